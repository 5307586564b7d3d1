/*
Demo driver for the lineedit package: a small echo loop with tab
completion, hints, multi-line mode, and a persisted history file.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/talbx/lineedit"
)

const historyPath = "lineedit-demo-history.txt"

func completion(s string) []string {
	if len(s) >= 1 && s[0] == 'h' {
		return []string{"hello", "hello there"}
	}
	return nil
}

func hints(s string) *lineedit.Hint {
	if s == "hello" {
		return &lineedit.Hint{Text: " World", Color: 35, Bold: false}
	}
	return nil
}

func main() {
	multilineFlag := flag.Bool("multiline", false, "enable multiline editing mode")
	keycodeFlag := flag.Bool("keycodes", false, "read and display keycodes")
	flag.Parse()

	sess, err := lineedit.Create(os.Stdin, os.Stdout, os.Stderr, "lineedit> ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer sess.Destroy()

	if *keycodeFlag {
		sess.PrintKeyCodes()
		return
	}
	if *multilineFlag {
		sess.SetMultiline(true)
		fmt.Println("Multi-line mode enabled.")
	}

	sess.SetCompletionCallback(completion)
	sess.SetHintsCallback(hints)
	sess.HistoryLoad(historyPath)

	for {
		line, err := sess.ReadLine()
		if err != nil {
			if err == lineedit.ErrInterrupted || err == lineedit.ErrEndOfFile {
				break
			}
			fmt.Fprintln(os.Stderr, err)
			break
		}
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		fmt.Printf("echo: %q\n", line)
		sess.HistoryAdd(line)
		sess.HistorySave(historyPath)
	}
}
