package main

import (
	"fmt"

	"github.com/alnah/go-forso/internal/yamlutil"
)

// runConfig prints the effective configuration (file + environment) as YAML.
func runConfig(args []string, env *Environment) error {
	flags, err := parseConfigFlags(args, env.Stdout)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(flags.config, loadEnvConfig())
	if err != nil {
		return err
	}

	out, err := yamlutil.Encode(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	_, err = env.Stdout.Write(out)
	return err
}
