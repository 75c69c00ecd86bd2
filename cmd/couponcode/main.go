package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/FrancisMurillo/coupon-code-ex/pkg/couponcode"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := loadEnvConfig()
	if err != nil {
		log.Error("failed to load environment configuration", "error", err)
		os.Exit(1)
	}

	var runErr error
	switch os.Args[1] {
	case "generate":
		runErr = runGenerate(cfg, os.Args[2:])
	case "validate":
		runErr = runValidate(cfg, os.Args[2:])
	case "obfuscate":
		runErr = runObfuscate(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if runErr != nil {
		var countErr *couponcode.PartsCountMismatchError
		var partErr *couponcode.PartInvalidError
		switch {
		case errors.As(runErr, &countErr):
			log.Error("code rejected", "reason", "parts count mismatch", "got", countErr.Actual, "want", countErr.Expected)
		case errors.As(runErr, &partErr):
			log.Error("code rejected", "reason", "invalid part", "part", partErr.PartIndex)
		default:
			log.Error("command failed", "error", runErr)
		}
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: couponcode <command> [flags] [args]

Commands:
  generate   print one or more freshly generated codes
  validate   check a user-entered code and print its canonical form
  obfuscate  apply the reversible shift-by-13 cipher to each argument

Run "couponcode <command> -h" for the command's flags.`)
}

func runGenerate(cfg envConfig, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	parts := fs.Int("parts", cfg.Parts, "number of parts per code")
	length := fs.Int("length", cfg.PartLength, "symbols per part, checkdigit included")
	seed := fs.String("seed", "", "seed for deterministic output")
	count := fs.Int("n", 1, "how many codes to print")
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := []couponcode.Option{
		couponcode.WithParts(*parts),
		couponcode.WithPartLength(*length),
	}
	if len(cfg.BadWords) > 0 {
		opts = append(opts, couponcode.WithBadWords(cfg.BadWords...))
	}
	if *seed != "" {
		opts = append(opts, couponcode.WithSeed([]byte(*seed)))
	}

	for i := 0; i < *count; i++ {
		code, err := couponcode.Generate(opts...)
		if err != nil {
			return err
		}
		fmt.Println(code)
	}
	return nil
}

func runValidate(cfg envConfig, args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	parts := fs.Int("parts", cfg.Parts, "expected number of parts")
	length := fs.Int("length", cfg.PartLength, "symbols per part, checkdigit included")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("validate takes exactly one code argument")
	}

	canonical, err := couponcode.Validate(fs.Arg(0),
		couponcode.WithParts(*parts),
		couponcode.WithPartLength(*length),
	)
	if err != nil {
		return err
	}
	fmt.Println(canonical)
	return nil
}

func runObfuscate(args []string) error {
	if len(args) == 0 {
		return errors.New("obfuscate takes at least one argument")
	}
	for _, arg := range args {
		fmt.Println(couponcode.Obfuscate(arg))
	}
	return nil
}
