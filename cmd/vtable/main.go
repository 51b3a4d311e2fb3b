package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"vtable/catalog"
	"vtable/config"
	"vtable/render"
	"vtable/table"
)

func main() {
	configPath := flag.String("config", "tables.yaml", "path to table definition file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("config error", "error", err)
		os.Exit(1)
	}

	cat := catalog.New()
	for _, tc := range cfg.Tables {
		t, err := cat.CreateTable(tc.Identifier, tc.Columns)
		if err != nil {
			slog.Error("failed to create table", "table", tc.Identifier, "error", err)
			os.Exit(1)
		}

		for _, rc := range tc.Rows {
			if err := seedRow(t, tc, rc); err != nil {
				slog.Error("failed to seed row", "table", tc.Identifier, "key", rc.Key, "error", err)
				os.Exit(1)
			}
		}

		slog.Info("table ready", "table", tc.Identifier, "rows", t.Len())
	}

	for _, identifier := range cat.Identifiers() {
		t, err := cat.Table(identifier)
		if err != nil {
			slog.Error("failed to fetch table", "table", identifier, "error", err)
			os.Exit(1)
		}
		fmt.Println(render.String(t))
	}
}

func seedRow(t *table.Table, tc config.TableConfig, rc config.RowConfig) error {
	key, err := uuid.Parse(rc.Key)
	if err != nil {
		return fmt.Errorf("invalid primary key: %w", err)
	}

	row := table.NewRow(t, key)
	for _, def := range tc.Columns {
		raw, present := rc.Values[def.Identifier]
		if !present {
			continue
		}
		cell, err := config.CellFor(def, raw)
		if err != nil {
			return err
		}
		if err := row.SetCell(def.Identifier, cell); err != nil {
			return err
		}
	}

	for name := range rc.Values {
		known := false
		for _, def := range tc.Columns {
			if def.Identifier == name {
				known = true
				break
			}
		}
		// ID is not seedable either; the key field is its only source.
		if !known {
			return fmt.Errorf("row value names unknown column '%s'", name)
		}
	}

	return t.CreateRow(row)
}
