//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	"github.com/smallyu/go-s256-ecdsa/internal/bridge"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go S256 WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoS256", map[string]interface{}{
		"PubKey": js.FuncOf(PubKey),
		"Sign":   js.FuncOf(Sign),
		"Verify": js.FuncOf(Verify),
	})

	<-c
}

// PubKey derives a public key.
// Arguments:
// 0: secret (hex)
// Returns:
// JSON {"x": hex, "y": hex} or an "error: ..." string
func PubKey(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (secretHex)"
	}
	return respond(bridge.PubKey(args[0].String()))
}

// Sign signs a digest.
// Arguments:
// 0: secret (hex)
// 1: digest (hex)
// Returns:
// JSON {"r": hex, "s": hex} or an "error: ..." string
func Sign(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (secretHex, digestHex)"
	}
	return respond(bridge.Sign(args[0].String(), args[1].String()))
}

// Verify checks a signature.
// Arguments:
// 0, 1: public key x and y (hex)
// 2: digest (hex)
// 3, 4: signature r and s (hex)
// Returns:
// JSON {"valid": bool} or an "error: ..." string
func Verify(this js.Value, args []js.Value) interface{} {
	if len(args) != 5 {
		return "error: expected 5 arguments (xHex, yHex, digestHex, rHex, sHex)"
	}
	return respond(bridge.Verify(args[0].String(), args[1].String(),
		args[2].String(), args[3].String(), args[4].String()))
}

func respond(out string, err error) interface{} {
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return out
}
