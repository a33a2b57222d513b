// cmd/report/main.go — Corre el cuadre de un dia y lo imprime por stdout.
// Uso: go run cmd/report/main.go -fecha 2026-08-28
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"cuadre/internal/config"
	"cuadre/internal/infra"
	"cuadre/internal/recon"
	"cuadre/internal/repository"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	fechaFlag := flag.String("fecha", "", "dia a cuadrar (AAAA-MM-DD, default: ayer)")
	verboso := flag.Bool("v", false, "imprime el detalle completo ademas del resumen")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).Level(zerolog.WarnLevel)

	fecha := time.Now().AddDate(0, 0, -1)
	if *fechaFlag != "" {
		var err error
		fecha, err = time.Parse("2006-01-02", *fechaFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fecha invalida %q: se espera AAAA-MM-DD\n", *fechaFlag)
			os.Exit(2)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	posDB, err := infra.NewBasePOS(cfg.POSDatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to POS postgres")
	}

	cb := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	fuente := repository.NewFuentePOS(posDB, cb, time.Duration(cfg.POSQueryTimeoutSeconds)*time.Second)

	rep := recon.NewGenerador(fuente).GenerarReporteDia(context.Background(), fecha)

	total, resumen := recon.ResumenCompacto(rep)
	fmt.Printf("%s  $%s  %s\n", fecha.Format("2006-01-02"), total.StringFixed(2), resumen)
	if *verboso {
		fmt.Println()
		fmt.Print(recon.DetalleVerboso(rep))
	}

	if rep.HayBugs || len(rep.TurnosConError) > 0 || rep.ErrorDia != "" {
		os.Exit(1)
	}
}
