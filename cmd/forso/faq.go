package main

import (
	"fmt"

	"github.com/alnah/go-forso/internal/assets"
)

// runFAQ prints the troubleshooting FAQ.
func runFAQ(env *Environment) error {
	text, err := env.AssetLoader.LoadText(assets.FAQText)
	if err != nil {
		return err
	}
	fmt.Fprint(env.Stdout, text)
	return nil
}
