package test

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// TextToBinary converts a quadlet aligned CESR text vector into its binary
// domain form. It panics on bad input, which makes it usable inline.
func TextToBinary(text string) []byte {
	if len(text)%4 != 0 {
		panic(fmt.Sprintf("text vector of length %d is not quadlet aligned", len(text)))
	}
	decoded, err := base64.RawURLEncoding.DecodeString(text)
	if err != nil {
		panic(fmt.Sprintf("error decoding text vector: %s", err))
	}
	return decoded
}

// ZeroSignature returns the text form of an indexed Ed25519 signature of 64 zero bytes
func ZeroSignature(index byte) string {
	return "A" + string(index) + strings.Repeat("A", 86)
}

// ZeroEd448Signature returns the text form of an indexed Ed448 signature of 114 zero bytes
func ZeroEd448Signature(index string) string {
	return "0A" + index + strings.Repeat("A", 152)
}

// Known text vectors
var (
	// One controller signature at index 0
	ControllerSigs = "-AAB" + ZeroSignature('A')

	// One controller signature and one Ed448 controller signature at index 2
	ControllerSigsMixed = "-AAC" + ZeroSignature('A') + ZeroEd448Signature("AC")

	// Two seal source couples with serial number 1
	SealSourceCouples = "-GAC" +
		"0AAAAAAAAAAAAAAAAAAAAAAQ" +
		"E3fUycq1G-P1K1pL2OhvY6ZU-9otSa3hXiCcrxuhjyII" +
		"0AAAAAAAAAAAAAAAAAAAAAAQ" +
		"E3fUycq1G-P1K1pL2OhvY6ZU-9otSa3hXiCcrxuhjyII"

	// One non-transferable receipt couple
	NonTransReceiptCouples = "-CAB" +
		"Bed2Tpxc8KeCEWoq3_RKKRjU_3P-chSser9J4eAtAK6I" +
		"0B8npsG58rX1ex73gaGe-jvRnw58RQGsDLzoSXaGn-kHRRNu6Kb44zXDtMnx-_8CjnHqskvDbz6pbEbed3JTOnCQ"

	// One transferable indexed signature group
	TransIdxSigGroups = "-FAB" +
		"ED9EB3sA5u2vCPOEmX3d7bEyHiSh7Xi8fjew2KMl3FQM" +
		"0AAAAAAAAAAAAAAAAAAAAAAA" +
		"EeGqW24EnxUgO_wfuFo6GR_vii-RNv5iGo8ibUrhe6Z0" +
		"-AAB" + ZeroSignature('A')

	// A frame holding one last establishment signature group, 35 quadlets long
	Frame = "-VAj-HABE4YPqsEOaPNaZxVIbY-Gx2bJgP-c7AH_K7pEE-YfcI9E-AABAAMX88afPpEfF_HF-E-1uZKyv8b_TdILi2x8vC3Yi7Q7yzHn2fR6Bkl2yn-ZxPqmsTfV3f-H_VQwMgk7jYEukVCA"

	// Serial numbers
	SerialNumberOne   = "0AAAAAAAAAAAAAAAAAAAAAAQ"
	SerialNumberThree = "0AAAAAAAAAAAAAAAAAAAAAAw"

	// 2023-12-25T12:12:12.000000+00:00
	Timestamp = "1AAG2023-12-25T12c12c12d000000p00c00"

	SelfAddressing = "EJJR2nmwyYAfSVPzhzS6b5CMZAoTNZH3ULvaU6Z-i0d8"
	SelfSigning    = "0Bq1UBr1QD5TokdcnO_FmnoYsd8rB4_-oaQtk0dfFSSXPcxAu7pSaQIVfkhzckCVmTIgrdxyXS21uZgs7NxoyZAQ"
)
