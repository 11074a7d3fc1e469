package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/numdial/audio"
	"github.com/lixenwraith/numdial/dialog"
	"github.com/lixenwraith/numdial/terminal"
)

func main() {
	term := terminal.New()

	// Prefer the synthesized tone; a failed speaker leaves opts.Bell nil
	// and the prompt falls back to the terminal BEL
	var opts dialog.Opts
	bell := audio.NewBell()
	if err := bell.Initialize(); err == nil {
		opts.Bell = bell
		defer bell.Cleanup()
	}

	fmt.Print("\x1b[2J\x1b[H")

	res, err := dialog.Prompt(term, 1, 1, "Enter your number: ", opts)
	fmt.Println()
	if err != nil {
		fmt.Fprintf(os.Stderr, "numdial: %v\n", err)
		os.Exit(1)
	}

	if res.Confirmed {
		fmt.Printf("Your number is %d\n", res.Value)
	}
}
