// Command argdef-example echoes its parsed arguments.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/anacrolix/argdef"
)

func main() {
	p := argdef.Argv([]argdef.Definition{
		{Name: "name", Usage: "--name NAME", Description: "Who to greet.", Required: true},
		{Name: "times", Usage: "--times N", Description: "How many greetings to print."},
		{Name: "pause", Usage: "--pause DURATION", Description: "How long to wait between greetings."},
		{Name: "shout", Usage: "--shout", Description: "Greet in upper case.", Flag: true},
	},
		argdef.WithComparison(argdef.CaseInsensitive),
		argdef.Description("Greets someone, possibly repeatedly."),
	)
	if err := greet(p); err != nil {
		fmt.Fprintf(os.Stderr, "argdef-example: %s\n", err)
		os.Exit(2)
	}
}

func greet(p *argdef.Parser) error {
	name, err := p.String("name", "")
	if err != nil {
		return err
	}
	times, err := argdef.ParseAs(p, "times", 1)
	if err != nil {
		return err
	}
	pause, err := argdef.ParseAs(p, "pause", time.Duration(0))
	if err != nil {
		return err
	}
	shout, err := argdef.ParseAs(p, "shout", false)
	if err != nil {
		return err
	}
	greeting := fmt.Sprintf("hello, %s", name)
	if shout {
		greeting = fmt.Sprintf("HELLO, %s!", name)
	}
	for i := 0; i < times; i++ {
		if i != 0 {
			time.Sleep(pause)
		}
		fmt.Println(greeting)
	}
	return nil
}
