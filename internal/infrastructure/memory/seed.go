package memory

import (
	"time"

	"github.com/google/uuid"

	"github.com/acculer/ledger-pro/internal/domain/billing"
	"github.com/acculer/ledger-pro/internal/domain/entity"
)

// Seed carga los datos de demostración del panel: un par de documentos, el
// directorio de negocios y los usuarios iniciales. Los totales se derivan de
// las líneas al sembrar, igual que en cualquier guardado.
func Seed(docs *DocumentRepo, businesses *BusinessRepo, users *UserRepo) error {
	if err := seedBusinesses(businesses); err != nil {
		return err
	}
	if err := seedUsers(users); err != nil {
		return err
	}
	return seedDocuments(docs)
}

func seedDocuments(repo *DocumentRepo) error {
	created := time.Date(2025, time.March, 22, 0, 0, 0, 0, time.Local)

	quotationItems := []entity.DocumentItem{
		billing.ComputeSimple(billing.SimpleInput{
			Description: "Cement",
			Site:        "Site A",
			Ref:         "25",
			Qty:         "10",
			Rate:        "200",
		}),
	}
	invoiceItems := []entity.DocumentItem{
		billing.ComputeSimple(billing.SimpleInput{
			Description: "Cement",
			Site:        "Site A",
			Ref:         "997212",
			Qty:         "10",
			Rate:        "200",
		}),
	}
	billItems := []entity.DocumentItem{
		billing.ComputeMeasured(billing.MeasuredInput{
			Description: "Cement",
			Qty:         "10",
			Length:      "5",
			Breadth:     "5",
			Rate:        "200",
		}),
	}

	seeds := []*entity.Document{
		{
			ID:               uuid.New().String(),
			Kind:             entity.KindQuotation,
			CounterpartyName: "Sree Amitra Property Developers",
			Number:           "QTN-2024-0008",
			FiscalYear:       "2024-2025",
			CreatedDate:      created,
			Items:            quotationItems,
			TotalAmount:      billing.Total(quotationItems),
		},
		{
			ID:               uuid.New().String(),
			Kind:             entity.KindInvoice,
			CounterpartyName: "Sree Amitra Property Developers",
			Number:           "INV-2024-0008",
			FiscalYear:       "2024-2025",
			CreatedDate:      created,
			Items:            invoiceItems,
			TotalAmount:      billing.Total(invoiceItems),
		},
		{
			ID:               uuid.New().String(),
			Kind:             entity.KindBill,
			CounterpartyName: "John Doe",
			CreatedDate:      created,
			MobileNumber:     "9876543210",
			SiteName:         "Site A",
			GSTNumber:        "33ABCDE1234F1Z1",
			TaxApplicable:    true,
			Items:            billItems,
			TotalAmount:      billing.Total(billItems),
		},
	}
	for _, d := range seeds {
		d.CreatedAt = created
		d.UpdatedAt = created
		if err := repo.Create(d); err != nil {
			return err
		}
	}
	return nil
}

func seedBusinesses(repo *BusinessRepo) error {
	now := time.Now()
	seeds := []*entity.Business{
		{
			ID:          uuid.New().String(),
			Name:        "7 Crafts Contracting P Ltd",
			ContactName: "Vinoth",
			Email:       "vinoth@7crafts.com",
			Mobile:      "9944477433",
			Address1:    "SF 194/1 K VPM Village",
			City:        "Coimbatore",
			State:       "Tamil Nadu",
			Country:     "India",
			Pincode:     "641025",
			Website:     "https://www.7crafts.com",
			GSTNumber:   "33AABCZ3641G1ZI",
			Status:      entity.BusinessStatusActive,
		},
		{
			ID:          uuid.New().String(),
			Name:        "AADHIRA TRADERS",
			ContactName: "Aadhira",
			Email:       "aadhira@traders.in",
			Address1:    "No 244 Main Road",
			Address2:    "Madukkarai Market",
			City:        "Coimbatore",
			State:       "Tamil Nadu",
			Country:     "India",
			Pincode:     "641105",
			GSTNumber:   "33BBBCZ1234A1Z5",
			Status:      entity.BusinessStatusActive,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Sree Amitra Property Developers",
			ContactName: "Amitra",
			Email:       "contact@sreeamitra.in",
			Address1:    "Avinashi Road",
			City:        "Coimbatore",
			State:       "Tamil Nadu",
			Country:     "India",
			Pincode:     "641014",
			GSTNumber:   "33CCBCZ9876B1Z9",
			Status:      entity.BusinessStatusActive,
		},
	}
	for _, b := range seeds {
		b.CreatedAt = now
		b.UpdatedAt = now
		if err := repo.Create(b); err != nil {
			return err
		}
	}
	return nil
}

func seedUsers(repo *UserRepo) error {
	now := time.Now()
	seeds := []*entity.User{
		{
			ID:     uuid.New().String(),
			Name:   "Info Superuser",
			Email:  "info@acculermedia.in",
			Mobile: "(735) 811-2791",
			Role:   entity.UserRoleSuperuser,
			Status: entity.UserStatusActive,
		},
		{
			ID:     uuid.New().String(),
			Name:   "Ramesh Superuser",
			Email:  "imagetex77@gmail.com",
			Mobile: "(989) 452-6079",
			Role:   entity.UserRoleSuperuser,
			Status: entity.UserStatusActive,
		},
	}
	for _, u := range seeds {
		u.CreatedAt = now
		u.UpdatedAt = now
		if err := repo.Create(u); err != nil {
			return err
		}
	}
	return nil
}
