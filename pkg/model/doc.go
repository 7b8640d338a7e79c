// Package model holds the semantic side of a block: its inputs, fields and
// typed connections.
//
// The geometry engine in [github.com/matzehuels/blockview/pkg/render/block]
// only reads this model, with two exceptions: it writes back a block's resolved
// workspace position, and a connection tracker records each connector's
// published workspace anchor.
//
// # Building blocks
//
//	b, err := model.NewBlock("controls_if",
//	    model.WithPrevious(), model.WithNext(), model.WithHue(210),
//	    model.WithInput("IF0", model.InputValue, model.Field{Label: "if", Width: 20, Height: 16}),
//	    model.WithInput("DO0", model.InputStatement, model.Field{Label: "do", Width: 24, Height: 16}),
//	)
//
// # Connecting
//
// [Connect] links two compatible connections: previous with next or with a
// statement input, and output with a value input. A block can never carry
// both a previous and an output connection.
package model
