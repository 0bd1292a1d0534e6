// Seeder de datos de demostración: crea el esquema si no existe y carga un
// catálogo mínimo, empleados, puestos y movimientos iniciales de dotación.
//
//	go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/serviza/dotaciones-api/internal/application/supplies"
	"github.com/serviza/dotaciones-api/internal/domain/entity"
	"github.com/serviza/dotaciones-api/internal/infrastructure/postgres"
	"github.com/serviza/dotaciones-api/pkg/config"
	"github.com/serviza/dotaciones-api/pkg/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS products (
	id         UUID PRIMARY KEY,
	code       TEXT NOT NULL,
	name       TEXT NOT NULL,
	detail     TEXT NOT NULL DEFAULT '',
	category   TEXT NOT NULL CHECK (category IN ('INDIVIDUAL', 'COLLECTIVE')),
	active     BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS employees (
	id        UUID PRIMARY KEY,
	full_name TEXT NOT NULL,
	document  TEXT NOT NULL DEFAULT '',
	active    BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS posts (
	id       UUID PRIMARY KEY,
	name     TEXT NOT NULL,
	location TEXT NOT NULL DEFAULT '',
	active   BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS supply_movements (
	id          UUID PRIMARY KEY,
	product_id  UUID NOT NULL REFERENCES products (id),
	kind        TEXT NOT NULL CHECK (kind IN ('PURCHASE', 'DELIVERY', 'RETURN', 'DISPOSAL')),
	quantity    BIGINT NOT NULL CHECK (quantity > 0),
	occurred_on DATE NOT NULL,
	holder_kind TEXT CHECK (holder_kind IN ('EMPLOYEE', 'POST')),
	holder_id   UUID,
	note        TEXT NOT NULL DEFAULT '',
	unit_cost   NUMERIC(14, 2),
	created_at  TIMESTAMPTZ NOT NULL,
	created_by  UUID,
	CHECK ((holder_kind IS NULL) = (holder_id IS NULL)),
	CHECK ((kind IN ('DELIVERY', 'RETURN')) = (holder_kind IS NOT NULL))
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_products_code ON products (code);
CREATE INDEX IF NOT EXISTS idx_supply_movements_product ON supply_movements (product_id, occurred_on);
CREATE INDEX IF NOT EXISTS idx_supply_movements_holder  ON supply_movements (holder_kind, holder_id);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}
	log.Info().Msg("esquema verificado")

	// Empleados y puestos: tablas de RRHH/supervisión; el seeder las puebla
	// solo para la demo, la API nunca escribe en ellas.
	employeeID := uuid.New().String()
	inactiveEmployeeID := uuid.New().String()
	postID := uuid.New().String()
	if _, err := pool.Exec(ctx,
		`INSERT INTO employees (id, full_name, document, active) VALUES
			($1, 'María Fernanda Ríos', '52841973', TRUE),
			($2, 'Julián Andrés Mora', '80233514', FALSE)
		 ON CONFLICT DO NOTHING`, employeeID, inactiveEmployeeID); err != nil {
		log.Fatal().Err(err).Msg("seed empleados")
	}
	if _, err := pool.Exec(ctx,
		`INSERT INTO posts (id, name, location, active) VALUES
			($1, 'Portería Torre Norte', 'Calle 93 # 14-20, Bogotá', TRUE)
		 ON CONFLICT DO NOTHING`, postID); err != nil {
		log.Fatal().Err(err).Msg("seed puestos")
	}

	productRepo := postgres.NewProductRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	postRepo := postgres.NewPostRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	registerUC := supplies.NewRegisterMovementUseCase(txRunner, productRepo, employeeRepo, postRepo)

	now := time.Now()
	uniform := &entity.Product{
		ID:        uuid.New().String(),
		Code:      entity.DeriveCode("Camisa institucional", "talla M azul"),
		Name:      "Camisa institucional",
		Detail:    "talla M azul",
		Category:  entity.CategoryIndividual,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	radio := &entity.Product{
		ID:        uuid.New().String(),
		Code:      entity.DeriveCode("Radio de comunicación", "Motorola EP450"),
		Name:      "Radio de comunicación",
		Detail:    "Motorola EP450",
		Category:  entity.CategoryCollective,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, p := range []*entity.Product{uniform, radio} {
		if err := productRepo.Create(p); err != nil {
			log.Fatal().Err(err).Str("product", p.Name).Msg("seed producto")
		}
	}
	log.Info().Int("products", 2).Msg("catálogo cargado")

	// Movimientos por el caso de uso: mismas validaciones que la API.
	shirtCost := decimal.NewFromFloat(38500)
	radioCost := decimal.NewFromFloat(412000)
	movements := []supplies.MovementInput{
		{ProductID: uniform.ID, Kind: entity.MovementKindPurchase, Quantity: 20, UnitCost: &shirtCost, Note: "compra inicial"},
		{ProductID: radio.ID, Kind: entity.MovementKindPurchase, Quantity: 6, UnitCost: &radioCost, Note: "compra inicial"},
		{ProductID: uniform.ID, Kind: entity.MovementKindDelivery, Quantity: 2, Holder: entity.EmployeeHolder(employeeID)},
		{ProductID: radio.ID, Kind: entity.MovementKindDelivery, Quantity: 3, Holder: entity.PostHolder(postID)},
	}
	for _, input := range movements {
		if _, err := registerUC.RegisterMovement(ctx, input); err != nil {
			log.Fatal().Err(err).Str("kind", string(input.Kind)).Msg("seed movimiento")
		}
	}
	log.Info().Int("movements", len(movements)).Msg("movimientos iniciales registrados")
}
