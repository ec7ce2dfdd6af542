// seed genera scripts SQL para poblar el catálogo de medicamentos a partir de
// la lista de precios del proveedor (CSV exportado en ISO-8859-1 con `;` como
// separador: nombre;descripcion;categoria;precio;stock;unidad;lote;vencimiento)
// y la cuenta super admin inicial.
//
// Uso: go run ./cmd/seed [ruta/lista_precios.csv]
// Por defecto busca lista_precios.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_catalog.sql
//
// La contraseña del super admin se toma de SEED_SUPER_ADMIN_PASSWORD y el
// email de SUPER_ADMIN_EMAIL.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const defaultSuperAdminEmail = "uniquemedicare786@gmail.com"

type medicineRow struct {
	name, description, category string
	price                       string
	stock                       string
	unit, batch, expiry         string
}

func main() {
	csvPath := "lista_precios.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// Los exportes del proveedor vienen en ISO-8859-1, no UTF-8.
	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	var rows []medicineRow
	for i, rec := range records {
		if i == 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "nombre") {
			continue // cabecera
		}
		if len(rec) < 5 || strings.TrimSpace(rec[0]) == "" {
			continue
		}
		row := medicineRow{
			name:        strings.TrimSpace(rec[0]),
			description: strings.TrimSpace(rec[1]),
			category:    strings.TrimSpace(rec[2]),
			price:       strings.ReplaceAll(strings.TrimSpace(rec[3]), ",", "."),
			stock:       strings.TrimSpace(rec[4]),
		}
		if len(rec) > 5 {
			row.unit = strings.TrimSpace(rec[5])
		}
		if len(rec) > 6 {
			row.batch = strings.TrimSpace(rec[6])
		}
		if len(rec) > 7 {
			row.expiry = strings.TrimSpace(rec[7])
		}
		if row.unit == "" {
			row.unit = "strip"
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "el CSV no contiene filas válidas")
		os.Exit(1)
	}

	superEmail := os.Getenv("SUPER_ADMIN_EMAIL")
	if superEmail == "" {
		superEmail = defaultSuperAdminEmail
	}
	superPassword := os.Getenv("SEED_SUPER_ADMIN_PASSWORD")
	if superPassword == "" {
		fmt.Fprintln(os.Stderr, "SEED_SUPER_ADMIN_PASSWORD es requerido")
		os.Exit(1)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(superPassword), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hashear contraseña: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_catalog.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogo inicial de medicamentos\n")
	out.WriteString("-- Generado desde la lista de precios del proveedor\n\n")

	out.WriteString("-- 1. Medicamentos\n")
	for _, m := range rows {
		id := uuid.NewString()
		expiry := "NULL"
		if m.expiry != "" {
			expiry = "'" + escapeSQL(m.expiry) + "'"
		}
		fmt.Fprintf(out,
			"INSERT INTO medicines (id, name, description, category, price, stock, unit, batch_no, expiry_date, created_at, updated_at)\n"+
				"VALUES ('%s', '%s', '%s', '%s', %s, %s, '%s', '%s', %s, now(), now())\n"+
				"ON CONFLICT (id) DO NOTHING;\n",
			id, escapeSQL(m.name), escapeSQL(m.description), escapeSQL(m.category),
			m.price, m.stock, escapeSQL(m.unit), escapeSQL(m.batch), expiry)
	}

	// 2. Cuenta super admin: el resolver de permisos la reconoce por email,
	// pero necesita la fila para autenticar la contraseña.
	out.WriteString("\n-- 2. Super admin\n")
	fmt.Fprintf(out,
		"INSERT INTO admins (id, name, email, password_hash, role, permissions, status, created_at, updated_at)\n"+
			"VALUES ('%s', 'Super Admin', '%s', '%s', 'super_admin', '{}', 'approved', now(), now())\n"+
			"ON CONFLICT (lower(email)) DO NOTHING;\n",
		uuid.NewString(), escapeSQL(strings.ToLower(superEmail)), string(hash))

	fmt.Printf("Generado %s: %d medicamentos + super admin %s\n", outPath, len(rows), superEmail)
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
