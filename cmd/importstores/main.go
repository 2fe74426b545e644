// importstores carga el padrón de tiendas de una empresa desde un CSV
// exportado de sistemas legados (separador ';', codificación ISO-8859-1).
//
// Uso: go run ./cmd/importstores -company <uuid> [-file tiendas.csv]
//
// Columnas esperadas: nombre;direccion;lat;lng;estado;ultima_visita
// estado en {prospect, active, at_risk, churned}; ultima_visita en
// formato 2006-01-02 o vacía (tienda nunca visitada).
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/dynastyos/dynasty-ops-api/internal/domain"
	"github.com/dynastyos/dynasty-ops-api/internal/domain/entity"
	"github.com/dynastyos/dynasty-ops-api/internal/infrastructure/postgres"
	"github.com/dynastyos/dynasty-ops-api/pkg/config"
)

var validStatuses = map[string]bool{
	entity.StoreStatusProspect: true,
	entity.StoreStatusActive:   true,
	entity.StoreStatusAtRisk:   true,
	entity.StoreStatusChurned:  true,
}

func main() {
	companyID := flag.String("company", "", "ID de la empresa dueña de las tiendas")
	filePath := flag.String("file", "tiendas.csv", "ruta del CSV a importar")
	flag.Parse()

	if *companyID == "" {
		fmt.Fprintln(os.Stderr, "falta -company")
		flag.Usage()
		os.Exit(1)
	}

	f, err := os.Open(*filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	storeRepo := postgres.NewStoreRepository(pool)

	// Los exportes legados vienen en latin-1; se decodifica al vuelo.
	reader := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	reader.Comma = ';'
	reader.FieldsPerRecord = 6

	imported, skipped := 0, 0
	line := 0
	for {
		line++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "línea %d: %v (omitida)\n", line, err)
			skipped++
			continue
		}
		store, err := parseStore(*companyID, record)
		if err != nil {
			fmt.Fprintf(os.Stderr, "línea %d: %v (omitida)\n", line, err)
			skipped++
			continue
		}
		if err := storeRepo.Create(ctx, store); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				fmt.Fprintf(os.Stderr, "línea %d: tienda duplicada (omitida)\n", line)
				skipped++
				continue
			}
			fmt.Fprintf(os.Stderr, "línea %d: insertar tienda: %v\n", line, err)
			os.Exit(1)
		}
		imported++
	}

	fmt.Printf("Importadas %d tiendas, %d líneas omitidas\n", imported, skipped)
}

func parseStore(companyID string, record []string) (*entity.Store, error) {
	name := strings.TrimSpace(record[0])
	if name == "" {
		return nil, fmt.Errorf("nombre vacío")
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
	if err != nil {
		return nil, fmt.Errorf("lat inválida %q", record[2])
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
	if err != nil {
		return nil, fmt.Errorf("lng inválida %q", record[3])
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, fmt.Errorf("coordenadas fuera de rango (%f, %f)", lat, lng)
	}

	status := strings.TrimSpace(strings.ToLower(record[4]))
	if status == "" {
		status = entity.StoreStatusProspect
	}
	if !validStatuses[status] {
		return nil, fmt.Errorf("estado desconocido %q", record[4])
	}

	var lastVisit *time.Time
	if raw := strings.TrimSpace(record[5]); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, fmt.Errorf("ultima_visita inválida %q", raw)
		}
		lastVisit = &t
	}

	now := time.Now().UTC()
	return &entity.Store{
		ID:          uuid.NewString(),
		CompanyID:   companyID,
		Name:        name,
		Address:     strings.TrimSpace(record[1]),
		Lat:         lat,
		Lng:         lng,
		Status:      status,
		LastVisitAt: lastVisit,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
