package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/ezrec/sapsim/cpu"
	"github.com/ezrec/sapsim/display"
	"github.com/ezrec/sapsim/emulator"
)

// prompter reads a line of user input.
type prompter interface {
	Readline() (string, error)
}

// session runs a booted program and prints its state.
type session struct {
	Name    string
	Emu     *emulator.Emulator
	Printer *display.Printer
	Output  io.Writer
}

// show prints the memory and register tables.
func (sess *session) show(state cpu.State, prior *cpu.State) (err error) {
	err = sess.Printer.Memory(state)
	if err != nil {
		return
	}
	return sess.Printer.Info(state, prior)
}

// fail prints a runtime error along with the machine state when it happened.
func (sess *session) fail(err error) error {
	var rt *emulator.ErrRuntime
	if errors.As(err, &rt) {
		fmt.Fprintf(sess.Output, "Error: %v\n", rt)
		sess.show(rt.State, nil)
	}
	return err
}

func (sess *session) halted() {
	fmt.Fprintln(sess.Output, "Program halted.")
}

// Speed runs the program to completion, then prints the final state.
func (sess *session) Speed(ctx context.Context) (err error) {
	err = sess.Emu.Run(ctx)
	if err != nil {
		return sess.fail(err)
	}

	err = sess.show(sess.Emu.State(), nil)
	if err != nil {
		return
	}

	sess.halted()

	return
}

// Step executes one instruction per line of input.
// An empty line steps, 'c' continues at full speed, and 'q' quits.
func (sess *session) Step(ctx context.Context, prompt prompter) (err error) {
	emu := sess.Emu

	fmt.Fprintf(sess.Output, "Initial state of simulation of %s\n", sess.Name)
	err = sess.show(emu.State(), nil)
	if err != nil {
		return
	}
	fmt.Fprintln(sess.Output, "Step mode: press Enter to execute the next instruction ( > ), 'c' to continue, 'q' to quit.")

	for {
		err = ctx.Err()
		if err != nil {
			return
		}

		var line string
		line, err = prompt.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			err = nil
			return
		}
		if err != nil {
			return
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "q", "quit":
			return
		case "c", "continue":
			return sess.Speed(ctx)
		}

		prior := emu.State()

		var done bool
		done, err = emu.Tick()
		if err != nil {
			return sess.fail(err)
		}
		if done {
			break
		}

		err = sess.show(emu.State(), &prior)
		if err != nil {
			return
		}
	}

	sess.halted()

	return
}
