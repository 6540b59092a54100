package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"market_syncer/internal/domain"
)

type CatalogStore struct {
	db *sqlx.DB
}

func NewCatalogStore(db *sqlx.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// UpsertProduct inserts or refreshes a catalog product by its natural key
// (provider, sku) and returns the row id.
func (s *CatalogStore) UpsertProduct(ctx context.Context, p *domain.CatalogProduct) (int64, error) {
	query := `
		INSERT INTO catalog_products (
			provider, provider_product_id, sku, normalized_sku,
			brand, model, colorway, image_url, category, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, now()
		)
		ON CONFLICT (provider, sku) DO UPDATE SET
			provider_product_id = EXCLUDED.provider_product_id,
			normalized_sku = EXCLUDED.normalized_sku,
			brand = EXCLUDED.brand,
			model = EXCLUDED.model,
			colorway = EXCLUDED.colorway,
			image_url = EXCLUDED.image_url,
			category = EXCLUDED.category,
			updated_at = now()
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		p.Provider,
		p.ProviderProductID,
		p.SKU,
		p.NormalizedSKU,
		p.Brand,
		p.Model,
		p.Colorway,
		p.ImageURL,
		p.Category,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// UpsertVariants replaces variant metadata for a product in one statement.
func (s *CatalogStore) UpsertVariants(ctx context.Context, productID int64, variants []domain.CatalogVariant) error {
	if len(variants) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO catalog_variants (product_id, provider_variant_id, size) VALUES ")
	valueArgs := make([]interface{}, 0, len(variants)*2+1)
	valueArgs = append(valueArgs, productID)

	for i, v := range variants {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($1, $")
		sb.WriteString(itoa(i*2 + 2))
		sb.WriteString(", $")
		sb.WriteString(itoa(i*2 + 3))
		sb.WriteString(")")
		valueArgs = append(valueArgs, v.ProviderVariantID, v.Size)
	}
	sb.WriteString(" ON CONFLICT (product_id, size) DO UPDATE SET provider_variant_id = EXCLUDED.provider_variant_id")

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), valueArgs...)
	return err
}

// GetByNormalizedSKU returns the product matching the canonicalized style
// code on one provider, with its variants loaded, or nil when no product
// exists. Matching is exact by design.
func (s *CatalogStore) GetByNormalizedSKU(ctx context.Context, provider, normalizedSKU string) (*domain.CatalogProduct, error) {
	var p domain.CatalogProduct
	query := `
		SELECT id, provider, provider_product_id, sku, normalized_sku,
		       brand, model, colorway, image_url, category, created_at, updated_at
		FROM catalog_products
		WHERE provider = $1 AND normalized_sku = $2`

	err := s.db.GetContext(ctx, &p, query, provider, normalizedSKU)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var variants []domain.CatalogVariant
	err = s.db.SelectContext(ctx, &variants,
		`SELECT id, product_id, provider_variant_id, size FROM catalog_variants WHERE product_id = $1`,
		p.ID,
	)
	if err != nil {
		return nil, err
	}
	p.Variants = variants

	return &p, nil
}

func itoa(i int) string {
	if i < 10 {
		return string(rune('0' + i))
	}
	return itoa(i/10) + string(rune('0'+i%10))
}
