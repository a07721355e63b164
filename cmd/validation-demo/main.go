// Command validation-demo registers the model validators into a gofac container
// and validates a few sample values.
//
// Settings come from GOFAC_* environment variables or a .env file, see
// internal/config.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"

	gofac "github.com/Ngone6325/gofac-validation"
	"github.com/Ngone6325/gofac-validation/internal/config"
	"github.com/Ngone6325/gofac-validation/internal/logger"
	"github.com/Ngone6325/gofac-validation/model"
	"github.com/Ngone6325/gofac-validation/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation-demo: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Fatal().Err(err).Msg("validation demo failed")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	valCfg, err := cfg.Validation.Apply(validation.NewConfiguration())
	if err != nil {
		return err
	}
	valCfg.WithMarkerTypes(model.Person{}).WithLogger(log)

	gofac.MustRegisterInstance(validator.New(validator.WithRequiredStructEnabled()), gofac.Singleton)
	if _, err := validation.AddValidationConfig(gofac.Global, valCfg); err != nil {
		return err
	}

	// scoped validators only resolve inside a scope
	scope := gofac.GlobalNewScope()
	defer scope.Reset()

	people := []model.Person{
		{Name: "Ada Lovelace", Email: "ada@example.com", Age: 36},
		{Name: "X", Age: 151, Address: &model.Address{City: "Paris", Country: "BE"}},
	}
	for _, p := range people {
		res, err := validation.ValidateAll(ctx, scope, p)
		if err != nil {
			return err
		}
		report(fmt.Sprintf("person %q", p.Name), res)
	}

	car := model.Car{Model: "Beetle", Year: 1967}
	res, err := validation.ValidateAll(ctx, scope, car)
	if err != nil {
		return err
	}
	report(fmt.Sprintf("car %q", car.Model), res)
	return nil
}

func report(subject string, res *validation.Result) {
	if res.IsValid() {
		fmt.Printf("%s: valid\n", subject)
		return
	}
	fmt.Printf("%s: %d problem(s)\n", subject, len(res.Errors))
	for _, f := range res.Errors {
		fmt.Printf("  - %s\n", f)
	}
}
