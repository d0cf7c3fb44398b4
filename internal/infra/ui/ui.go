// Where: internal/infra/ui/ui.go
// What: High-level output surface for command handlers.
// Why: Keep command output consistent while allowing emoji to be toggled.
package ui

import (
	"fmt"
	"io"
)

// KeyValue is a key/value pair rendered inside a block.
type KeyValue struct {
	Key   string
	Value any
}

// UserInterface exposes high-level output helpers used by commands.
type UserInterface interface {
	Info(msg string)
	Warn(msg string)
	Success(msg string)
	Block(emoji, title string, rows []KeyValue)
	List(items []string)
}

// NewUI returns a UserInterface writing to out.
func NewUI(out io.Writer, emojiEnabled bool) UserInterface {
	return consoleUI{
		out:     out,
		console: NewWithEmoji(out, emojiEnabled),
	}
}

type consoleUI struct {
	out     io.Writer
	console *Console
}

func (c consoleUI) Info(msg string) {
	fmt.Fprintln(c.out, msg)
}

func (c consoleUI) Warn(msg string) {
	c.console.Warn(msg)
}

func (c consoleUI) Success(msg string) {
	c.console.Success(msg)
}

func (c consoleUI) Block(emoji, title string, rows []KeyValue) {
	c.console.BlockStart(emoji, title)
	for _, kv := range rows {
		c.console.Item(kv.Key, kv.Value)
	}
	c.console.BlockEnd()
}

func (c consoleUI) List(items []string) {
	for _, item := range items {
		c.console.ItemPlain(item)
	}
}
