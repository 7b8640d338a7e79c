package sample

import (
	"github.com/matzehuels/blockview/pkg/model"
)

const (
	charWidth   = 7
	fieldHeight = 16
)

type builder struct {
	err error
}

func (b *builder) block(typ string, opts ...model.Option) *model.Block {
	blk, err := model.NewBlock(typ, opts...)
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		// Keep building with a bare block so callers need no nil checks.
		blk, _ = model.NewBlock(typ)
	}
	return blk
}

func (b *builder) connect(a, c *model.Connection) {
	if err := model.Connect(a, c); err != nil && b.err == nil {
		b.err = err
	}
}

// attach connects child's output or previous connection to the named input.
func (b *builder) attach(parent *model.Block, name string, child *model.Block) {
	in, ok := parent.Input(name)
	if !ok {
		return
	}
	c := child.OutputConnection()
	if in.Kind == model.InputStatement {
		c = child.PreviousConnection()
	}
	b.connect(in.Connection(), c)
}

// stack chains blocks through their next/previous connections.
func (b *builder) stack(blocks ...*model.Block) *model.Block {
	for i := 1; i < len(blocks); i++ {
		b.connect(blocks[i-1].NextConnection(), blocks[i].PreviousConnection())
	}
	return blocks[0]
}

func label(s string) model.Field {
	return model.Field{Label: s, Width: charWidth * len(s), Height: fieldHeight}
}

func (b *builder) text(s string) *model.Block {
	return b.block("text", model.WithOutput(), model.WithHue(160), model.WithInline(true),
		model.WithInput("TEXT", model.InputDummy, label(`"`+s+`"`)))
}

func (b *builder) number(s string) *model.Block {
	return b.block("math_number", model.WithOutput(), model.WithHue(230), model.WithInline(true),
		model.WithInput("NUM", model.InputDummy, label(s)))
}

func (b *builder) print(s string) *model.Block {
	p := b.block("text_print", model.WithPrevious(), model.WithNext(), model.WithHue(160),
		model.WithInput("TEXT", model.InputValue, label("print")))
	b.attach(p, "TEXT", b.text(s))
	return p
}

func (b *builder) arithmetic(x, y *model.Block) *model.Block {
	m := b.block("math_arithmetic", model.WithOutput(), model.WithHue(230), model.WithInline(true),
		model.WithInput("A", model.InputValue),
		model.WithInput("B", model.InputValue, label("+")))
	if x != nil {
		b.attach(m, "A", x)
	}
	if y != nil {
		b.attach(m, "B", y)
	}
	return m
}

func (b *builder) compare(x, y *model.Block) *model.Block {
	c := b.block("logic_compare", model.WithOutput(), model.WithHue(210), model.WithInline(true),
		model.WithInput("A", model.InputValue),
		model.WithInput("B", model.InputValue, label("=")))
	b.attach(c, "A", x)
	b.attach(c, "B", y)
	return c
}

func buildEmpty(b *builder) *model.Block {
	return b.block("empty", model.WithPrevious(), model.WithNext(), model.WithHue(0))
}

func buildTextPrint(b *builder) *model.Block {
	return b.print("hello")
}

func buildArithmetic(b *builder) *model.Block {
	return b.arithmetic(b.number("1"), b.number("2"))
}

func buildIf(b *builder) *model.Block {
	blk := b.block("controls_if", model.WithPrevious(), model.WithNext(), model.WithHue(210),
		model.WithInput("IF0", model.InputValue, label("if")),
		model.WithInput("DO0", model.InputStatement, label("do")))
	b.attach(blk, "IF0", b.compare(b.number("1"), b.number("1")))
	b.attach(blk, "DO0", b.print("equal"))
	return blk
}

func buildRepeat(b *builder) *model.Block {
	blk := b.block("controls_repeat_ext", model.WithPrevious(), model.WithNext(), model.WithHue(120),
		model.WithInline(true),
		model.WithInput("TIMES", model.InputValue, label("repeat")),
		model.WithInput("LABEL", model.InputDummy, label("times")),
		model.WithInput("DO", model.InputStatement, label("do")))
	b.attach(blk, "TIMES", b.number("10"))
	b.attach(blk, "DO", b.stack(b.print("tick"), b.print("tock")))
	return blk
}

func buildRowBreak(b *builder) *model.Block {
	return b.block("row_break", model.WithPrevious(), model.WithNext(), model.WithHue(290),
		model.WithInline(true),
		model.WithInput("V1", model.InputValue, label("first")),
		model.WithInput("V2", model.InputValue, label("second")),
		model.WithInput("S", model.InputStatement, label("body")),
		model.WithInput("D", model.InputDummy, label("end")))
}

func buildAdjacent(b *builder) *model.Block {
	blk := b.block("adjacent_statements", model.WithPrevious(), model.WithNext(), model.WithHue(45),
		model.WithInline(true),
		model.WithInput("S1", model.InputStatement, label("then")),
		model.WithInput("S2", model.InputStatement, label("else")))
	b.attach(blk, "S2", b.print("fallback"))
	return blk
}

func buildNested(b *builder) *model.Block {
	inner := b.block("controls_if", model.WithPrevious(), model.WithNext(), model.WithHue(210),
		model.WithInput("IF0", model.InputValue, label("if")),
		model.WithInput("DO0", model.InputStatement, label("do")))
	b.attach(inner, "IF0", b.compare(b.arithmetic(b.number("2"), b.number("3")), b.number("5")))
	b.attach(inner, "DO0", b.print("math works"))

	outer := b.block("controls_repeat_ext", model.WithPrevious(), model.WithNext(), model.WithHue(120),
		model.WithInline(true),
		model.WithInput("TIMES", model.InputValue, label("repeat")),
		model.WithInput("LABEL", model.InputDummy, label("times")),
		model.WithInput("DO", model.InputStatement, label("do")))
	b.attach(outer, "TIMES", b.number("3"))
	b.attach(outer, "DO", b.stack(inner, b.print("done")))

	return b.stack(outer, b.print("after"))
}
