package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"lsag/includer"
	"lsag/lsag"
)

func cmdKeygen(args []string) {
	fs := flag.NewFlagSet("keygen", flag.ExitOnError)
	fs.Parse(args)

	var buf [32]byte
	if _, err := rand.Read(buf[:]); err != nil {
		fatalf("failed to read randomness: %v", err)
	}
	priv := secp256k1.PrivKeyFromBytes(buf[:])
	pub := priv.PubKey()

	fmt.Printf("private: %s\n", hex.EncodeToString(priv.Serialize()))
	fmt.Printf("public:  %s\n", hex.EncodeToString(pub.SerializeUncompressed()))
}

func cmdSign(args []string) {
	fs := flag.NewFlagSet("sign", flag.ExitOnError)
	ringFlag := fs.String("ring", "", "comma-separated hex-encoded ring public keys")
	privFlag := fs.String("priv", "", "hex-encoded private key")
	indexFlag := fs.Int("index", -1, "signer's index within the ring")
	messageFlag := fs.String("message", "", "message to sign")
	tagFlag := fs.String("tag", "", "optional linkability tag")
	fs.Parse(args)

	if *ringFlag == "" || *privFlag == "" || *indexFlag < 0 {
		fatalf("sign requires --ring, --priv, and --index")
	}

	ringHexes := strings.Split(*ringFlag, ",")
	ring := make(lsag.Ring, len(ringHexes))
	for i, h := range ringHexes {
		p, err := parsePubKeyHex(strings.TrimSpace(h))
		if err != nil {
			fatalf("invalid ring member %d: %v", i, err)
		}
		ring[i] = p
	}

	privBytes, err := hex.DecodeString(*privFlag)
	if err != nil {
		fatalf("invalid private key: %v", err)
	}
	priv := secp256k1.PrivKeyFromBytes(privBytes)

	var tag []byte
	if *tagFlag != "" {
		tag = []byte(*tagFlag)
	}

	signer, err := lsag.NewSigner(ring, lsag.SigningDetails{PrivateKey: priv, SignerIndex: *indexFlag}, tag)
	if err != nil {
		fatalf("failed to construct signer: %v", err)
	}

	sig, err := signer.Sign([]byte(*messageFlag))
	if err != nil {
		fatalf("signing failed: %v", err)
	}

	out, err := marshalSig(sig)
	if err != nil {
		fatalf("failed to encode signature: %v", err)
	}
	fmt.Println(string(out))
}

func cmdVerify(args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	fs.Parse(args)

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatalf("failed to read stdin: %v", err)
	}

	sig, err := unmarshalSig(data)
	if err != nil {
		fatalf("failed to decode signature: %v", err)
	}

	result := lsag.Commit(sig)
	fmt.Printf("verified: %t\n", result.Verified)
}

func cmdIncluder(args []string) {
	fs := flag.NewFlagSet("includer", flag.ExitOnError)
	keyImageFlag := fs.String("key-image", "", "hex-encoded key image")
	validatorsFlag := fs.Int("validators", 0, "validator count")
	targetFlag := fs.Int("target", includer.TargetIncluders, "target includer count")
	fs.Parse(args)

	if *keyImageFlag == "" || *validatorsFlag <= 0 {
		fatalf("includer requires --key-image and --validators")
	}

	keyImage, err := parsePubKeyHex(*keyImageFlag)
	if err != nil {
		fatalf("invalid key image: %v", err)
	}

	selected := includer.IsIncluder(keyImage, *validatorsFlag, *targetFlag)
	fmt.Println(strconv.FormatBool(selected))
}
