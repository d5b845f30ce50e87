// Package main implements a standalone seed script that populates the shop
// with test data: schema, brands, products, and a couple of generated
// product images on disk so the catalog pipeline has something to resolve.
package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

const schema = `
CREATE TABLE IF NOT EXISTS brands (
	id         BIGSERIAL PRIMARY KEY,
	name       TEXT NOT NULL,
	website    TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS products (
	id           BIGSERIAL PRIMARY KEY,
	name         TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT '',
	price        BIGINT NOT NULL,
	currency     TEXT NOT NULL DEFAULT 'EUR',
	availability TEXT NOT NULL DEFAULT 'visible',
	brand_id     BIGINT REFERENCES brands(id),
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_products_availability ON products(availability);
`

type seedProduct struct {
	name         string
	description  string
	price        int64
	availability string
	brand        string
	tint         color.RGBA
}

var seedProducts = []seedProduct{
	{"Enamel Mug", "A sturdy enamel mug for camp coffee.", 1450, "visible", "Norda", color.RGBA{R: 0x2f, G: 0x6f, B: 0x8f, A: 0xff}},
	{"Linen Tote", "A simple linen tote with flat handles.", 2900, "visible", "Norda", color.RGBA{R: 0xb8, G: 0x8a, B: 0x52, A: 0xff}},
	{"Field Notebook", "Pocket notebook, dotted, 48 pages.", 900, "visible", "Papier", color.RGBA{R: 0x6b, G: 0x4f, B: 0x3b, A: 0xff}},
	{"Wool Beanie", "Heavy knit beanie in undyed wool.", 2400, "visible", "Norda", color.RGBA{R: 0x88, G: 0x88, B: 0x80, A: 0xff}},
	{"Ceramic Planter", "Hand thrown planter, drainage hole included.", 3800, "visible", "", color.RGBA{R: 0xa0, G: 0x52, B: 0x43, A: 0xff}},
	{"Brass Bottle Opener", "Solid brass, ages with use.", 1600, "soldOut", "", color.RGBA{R: 0xc9, G: 0xa2, B: 0x3f, A: 0xff}},
	{"Prototype Candle", "Not ready for the storefront yet.", 1200, "notVisible", "", color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}},
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		getEnv("POSTGRES_USER", "teini"),
		getEnv("POSTGRES_PASSWORD", "teini_secret"),
		getEnv("POSTGRES_HOST", "localhost"),
		getEnv("POSTGRES_PORT", "5432"),
		getEnv("SHOP_DB_NAME", "shop_db"),
		getEnv("POSTGRES_SSL_MODE", "disable"),
	)
	imageRoot := getEnv("IMAGE_ROOT", "./public/products")

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to postgres: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatalf("create schema: %v", err)
	}
	log.Println("schema ready")

	brandIDs := map[string]int64{}
	for _, p := range seedProducts {
		if p.brand == "" {
			continue
		}
		if _, ok := brandIDs[p.brand]; ok {
			continue
		}
		var id int64
		err := pool.QueryRow(ctx,
			`INSERT INTO brands (name, website) VALUES ($1, $2) RETURNING id`,
			p.brand, "https://"+p.brand+".example",
		).Scan(&id)
		if err != nil {
			log.Fatalf("insert brand %q: %v", p.brand, err)
		}
		brandIDs[p.brand] = id
	}
	log.Printf("seeded %d brands", len(brandIDs))

	for _, p := range seedProducts {
		var brandID *int64
		if id, ok := brandIDs[p.brand]; ok {
			brandID = &id
		}

		var productID int64
		err := pool.QueryRow(ctx,
			`INSERT INTO products (name, description, price, currency, availability, brand_id)
			 VALUES ($1, $2, $3, 'EUR', $4, $5) RETURNING id`,
			p.name, p.description, p.price, p.availability, brandID,
		).Scan(&productID)
		if err != nil {
			log.Fatalf("insert product %q: %v", p.name, err)
		}

		if p.availability == "notVisible" {
			continue
		}
		if err := writeProductImages(imageRoot, productID, p.tint); err != nil {
			log.Fatalf("write images for product %d: %v", productID, err)
		}
	}
	log.Printf("seeded %d products", len(seedProducts))
}

// writeProductImages generates two flat-color JPEGs per product so image
// listing and placeholder derivation have real files to work with.
func writeProductImages(root string, productID int64, tint color.RGBA) error {
	dir := filepath.Join(root, fmt.Sprintf("%d", productID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	for i, name := range []string{"main.jpg", "detail.jpg"} {
		img := image.NewRGBA(image.Rect(0, 0, 640, 640))
		shade := tint
		if i > 0 {
			shade.R = shade.R / 2
			shade.G = shade.G / 2
			shade.B = shade.B / 2
		}
		for y := 0; y < 640; y++ {
			for x := 0; x < 640; x++ {
				img.Set(x, y, shade)
			}
		}

		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			return err
		}
		if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 85}); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}
