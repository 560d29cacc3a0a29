package usecase

import (
	"context"
	"errors"
	"testing"

	"cortinaria/internal/domain/entities"
	mock_interfaces "cortinaria/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newCatalogUseCaseForTest(t *testing.T) (*CatalogUseCase, *mock_interfaces.MockIProductRepository, *mock_interfaces.MockIAccessoryRepository, *mock_interfaces.MockIPricingConfigRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	products := mock_interfaces.NewMockIProductRepository(ctrl)
	accessories := mock_interfaces.NewMockIAccessoryRepository(ctrl)
	config := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
	return NewCatalogUseCase(products, accessories, config), products, accessories, config
}

func TestCatalogUseCase_CreateProduct(t *testing.T) {
	t.Run("derives sale price from cost and margin", func(t *testing.T) {
		uc, products, _, _ := newCatalogUseCaseForTest(t)
		products.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if p.ID == "" || p.CreatedAt.IsZero() {
					t.Fatalf("expected id and timestamps, got %+v", p)
				}
				if p.SalePrice != 150 {
					t.Fatalf("expected sale price 150, got %v", p.SalePrice)
				}
				if p.Method != entities.CalculationMethodArea {
					t.Fatalf("expected area method, got %s", p.Method)
				}
				return p, nil
			},
		)

		_, err := uc.CreateProduct(context.Background(), entities.Product{
			Name:         " VOIL LISO ",
			CostPrice:    100,
			ProfitMargin: 50,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("wave model tag implies height tiers", func(t *testing.T) {
		uc, products, _, _ := newCatalogUseCaseForTest(t)
		products.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if !p.IsHeightTiered() {
					t.Fatalf("expected height-tiered method, got %s", p.Method)
				}
				if p.CostPrice != 0 || p.SalePrice != 0 {
					t.Fatalf("flat prices must stay zero for tiered products")
				}
				return p, nil
			},
		)

		_, err := uc.CreateProduct(context.Background(), entities.Product{
			Name:      "CORTINA WAVE",
			ModelTag:  "wave",
			CostPrice: 99,
			HeightTiers: []entities.HeightTier{
				{MinHeight: 0, MaxHeight: 2.5, Price: 100},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("validation failures", func(t *testing.T) {
		uc, _, _, _ := newCatalogUseCaseForTest(t)

		cases := []struct {
			name    string
			product entities.Product
			want    error
		}{
			{"empty name", entities.Product{Name: "  "}, ErrInvalidProductName},
			{"negative margin", entities.Product{Name: "X", ProfitMargin: -1}, ErrInvalidProfitMargin},
			{"negative cost", entities.Product{Name: "X", CostPrice: -5}, ErrInvalidCostPrice},
			{"negative minimum", entities.Product{Name: "X", MinWidth: -1}, ErrInvalidMinimum},
			{"tiered without tiers", entities.Product{Name: "X", ModelTag: "WAVE"}, ErrMissingHeightTiers},
			{
				"inverted tier bounds",
				entities.Product{Name: "X", ModelTag: "WAVE", HeightTiers: []entities.HeightTier{{MinHeight: 3, MaxHeight: 2, Price: 10}}},
				ErrInvalidHeightTier,
			},
			{
				"negative tier price",
				entities.Product{Name: "X", ModelTag: "WAVE", HeightTiers: []entities.HeightTier{{MinHeight: 0, MaxHeight: 2, Price: -10}}},
				ErrInvalidHeightTier,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if _, err := uc.CreateProduct(context.Background(), tc.product); !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})
}

func TestCatalogUseCase_UpdateProduct(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, products, _, _ := newCatalogUseCaseForTest(t)
		products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{}, nil)

		_, err := uc.UpdateProduct(context.Background(), entities.Product{ID: "p-1", Name: "X"})
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("keeps id and creation time", func(t *testing.T) {
		uc, products, _, _ := newCatalogUseCaseForTest(t)
		existing := entities.Product{ID: "p-1", Name: "OLD"}
		products.EXPECT().GetByID(gomock.Any(), "p-1").Return(existing, nil)
		products.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if p.ID != "p-1" {
					t.Fatalf("id must not change, got %q", p.ID)
				}
				if p.SalePrice != 220 {
					t.Fatalf("expected rederived sale price 220, got %v", p.SalePrice)
				}
				return p, nil
			},
		)

		_, err := uc.UpdateProduct(context.Background(), entities.Product{
			ID:           "p-1",
			Name:         "NOVO",
			CostPrice:    200,
			ProfitMargin: 10,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCatalogUseCase_Accessories(t *testing.T) {
	t.Run("create derives per-color sale price", func(t *testing.T) {
		uc, _, accessories, _ := newCatalogUseCaseForTest(t)
		accessories.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Accessory) (entities.Accessory, error) {
				if len(a.Colors) != 2 {
					t.Fatalf("expected two colors, got %d", len(a.Colors))
				}
				if a.Colors[0].SalePrice != 15 || a.Colors[1].SalePrice != 30 {
					t.Fatalf("unexpected sale prices: %+v", a.Colors)
				}
				return a, nil
			},
		)

		_, err := uc.CreateAccessory(context.Background(), entities.Accessory{
			Name: "Cordão",
			Unit: "m",
			Colors: []entities.AccessoryColor{
				{Name: "Branco", CostPrice: 10, ProfitMargin: 50},
				{Name: "Preto", CostPrice: 20, ProfitMargin: 50},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("create rejects empty color list", func(t *testing.T) {
		uc, _, _, _ := newCatalogUseCaseForTest(t)
		_, err := uc.CreateAccessory(context.Background(), entities.Accessory{Name: "Cordão"})
		if !errors.Is(err, ErrAccessoryNeedsColors) {
			t.Fatalf("expected ErrAccessoryNeedsColors, got %v", err)
		}
	})

	t.Run("create rejects invalid color", func(t *testing.T) {
		uc, _, _, _ := newCatalogUseCaseForTest(t)
		_, err := uc.CreateAccessory(context.Background(), entities.Accessory{
			Name:   "Cordão",
			Colors: []entities.AccessoryColor{{Name: " ", CostPrice: 10}},
		})
		if !errors.Is(err, ErrInvalidAccessoryColor) {
			t.Fatalf("expected ErrInvalidAccessoryColor, got %v", err)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		uc, _, accessories, _ := newCatalogUseCaseForTest(t)
		accessories.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.Accessory{}, nil)

		_, err := uc.GetAccessory(context.Background(), "a-1")
		if !errors.Is(err, ErrAccessoryNotFound) {
			t.Fatalf("expected ErrAccessoryNotFound, got %v", err)
		}
	})

	t.Run("delete requires id", func(t *testing.T) {
		uc, _, _, _ := newCatalogUseCaseForTest(t)
		if err := uc.DeleteAccessory(context.Background(), "  "); !errors.Is(err, ErrInvalidAccessoryID) {
			t.Fatalf("expected ErrInvalidAccessoryID, got %v", err)
		}
	})
}

func TestCatalogUseCase_PricingConfig(t *testing.T) {
	t.Run("save rail table normalizes alias keys", func(t *testing.T) {
		uc, _, _, config := newCatalogUseCaseForTest(t)
		config.EXPECT().PutRailTable(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, table entities.RailPricingTable) error {
				if _, ok := table[entities.RailTypeMotorizado]; !ok {
					t.Fatalf("expected canonical motorizado key, got %v", table)
				}
				return nil
			},
		)

		saved, err := uc.SaveRailTable(context.Background(), entities.RailPricingTable{
			"motorizado": {CostPrice: 100, SalePrice: 150},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved[entities.RailTypeMotorizado].SalePrice != 150 {
			t.Fatalf("unexpected saved table: %v", saved)
		}
	})

	t.Run("save rail table rejects unknown keys", func(t *testing.T) {
		uc, _, _, _ := newCatalogUseCaseForTest(t)
		_, err := uc.SaveRailTable(context.Background(), entities.RailPricingTable{
			"trilho_invisivel": {SalePrice: 10},
		})
		if !errors.Is(err, ErrUnknownRailType) {
			t.Fatalf("expected ErrUnknownRailType, got %v", err)
		}
	})

	t.Run("save rail table rejects negative price", func(t *testing.T) {
		uc, _, _, _ := newCatalogUseCaseForTest(t)
		_, err := uc.SaveRailTable(context.Background(), entities.RailPricingTable{
			"motorizado": {SalePrice: -1},
		})
		if !errors.Is(err, ErrNegativeConfigPrice) {
			t.Fatalf("expected ErrNegativeConfigPrice, got %v", err)
		}
	})

	t.Run("save valance config", func(t *testing.T) {
		uc, _, _, config := newCatalogUseCaseForTest(t)
		config.EXPECT().PutValanceConfig(gomock.Any(), entities.ValanceConfig{CostPricePerMeter: 80, SalePricePerMeter: 120}).Return(nil)

		saved, err := uc.SaveValanceConfig(context.Background(), entities.ValanceConfig{CostPricePerMeter: 80, SalePricePerMeter: 120})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.SalePricePerMeter != 120 {
			t.Fatalf("unexpected saved config: %+v", saved)
		}
	})

	t.Run("save valance config rejects negatives", func(t *testing.T) {
		uc, _, _, _ := newCatalogUseCaseForTest(t)
		_, err := uc.SaveValanceConfig(context.Background(), entities.ValanceConfig{CostPricePerMeter: -1})
		if !errors.Is(err, ErrNegativeConfigPrice) {
			t.Fatalf("expected ErrNegativeConfigPrice, got %v", err)
		}
	})
}
