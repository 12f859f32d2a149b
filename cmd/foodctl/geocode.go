package main

import (
	"fmt"
	"strings"

	"github.com/Gunvolt24/foodcart/internal/assignment"
	"github.com/Gunvolt24/foodcart/internal/geocoder/yandex"
	"github.com/Gunvolt24/foodcart/internal/repo/postgres"
	"github.com/spf13/cobra"
)

func newGeocodeCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "geocode <address>",
		Short: "Координаты адреса через хранилище координат (при промахе — геокодер с записью)",
		Example: `  foodctl geocode "Москва, ул. Тверская, 7"
  foodctl geocode "Москва, ул. Тверская, 7" --to "Москва, ул. Новый Арбат, 15"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			address := strings.TrimSpace(strings.Join(args, " "))

			e, err := openEnv(ctx)
			if err != nil {
				return err
			}
			defer e.cleanup()

			addresses := []string{address}
			if to != "" {
				addresses = append(addresses, to)
			}
			geo := yandex.NewClient(e.cfg.Geocoder.BaseURL, e.cfg.Geocoder.APIKey, e.cfg.Geocoder.Timeout, e.log)
			resolver, err := assignment.LoadResolver(ctx, addresses, postgres.NewLocationRepository(e.pool), geo, e.log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			from, found, err := resolver.Resolve(ctx, address)
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintf(out, "%s: адрес не распознан\n", address)
				return nil
			}
			fmt.Fprintf(out, "%s: lat=%.6f lon=%.6f\n", address, from.Lat, from.Lon)

			if to == "" {
				return nil
			}
			dest, found, err := resolver.Resolve(ctx, to)
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintf(out, "%s: адрес не распознан\n", to)
				return nil
			}
			fmt.Fprintf(out, "%s: lat=%.6f lon=%.6f\n", to, dest.Lat, dest.Lon)
			fmt.Fprintf(out, "расстояние: %s\n", assignment.FormatKm(assignment.GeodesicKm(from, dest)))
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "второй адрес: вывести расстояние до него")
	return cmd
}
