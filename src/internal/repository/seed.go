package repository

import (
	"time"

	"donation-service/src/internal/entity"
)

// CurrentUserID is the donor the public pages act for when no X-User-ID
// header is given.
const CurrentUserID = "user-001"

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 10, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int {
	return &v
}

// Seed groups the static data every in-memory repository starts from. Each
// call builds fresh values so separate repositories never share slices.
type Seed struct {
	Users        []entity.User
	Emergencies  []entity.Emergency
	Rewards      []entity.Reward
	UserRewards  []entity.UserReward
	Points       []entity.UserPoints
	Participants []entity.LeaderboardParticipant
}

func DefaultSeed() Seed {
	rewards := seedRewards()
	return Seed{
		Users:        seedUsers(),
		Emergencies:  seedEmergencies(),
		Rewards:      rewards,
		UserRewards:  seedUserRewards(rewards),
		Points:       seedPoints(),
		Participants: seedParticipants(),
	}
}

func seedUsers() []entity.User {
	return []entity.User{
		{
			ID: "user-001", FirstName: "Sofía", LastName: "Ramírez", NationalID: "30111222",
			BirthDate: day(1988, time.March, 14), Address: "Av. Corrientes 1234", City: "Buenos Aires",
			Province: "CABA", PostalCode: "C1043", Email: "sofia.ramirez@example.com", Phone: "+54 11 5555-0101",
			Donations: []entity.Donation{
				{ID: "don-001", UserID: "user-001", Date: day(2024, time.January, 10), Amount: 50, PaymentMethod: entity.PaymentCard, Status: entity.DonationCompleted, Recurring: true},
				{ID: "don-002", UserID: "user-001", Date: day(2024, time.February, 10), Amount: 50, PaymentMethod: entity.PaymentCard, Status: entity.DonationCompleted, Recurring: true},
				{ID: "don-003", UserID: "user-001", Date: day(2024, time.March, 2), Amount: 120, PaymentMethod: entity.PaymentTransfer, Status: entity.DonationCompleted},
			},
		},
		{
			ID: "user-002", FirstName: "María", LastName: "González", NationalID: "27333444",
			BirthDate: day(1979, time.July, 2), Address: "Calle San Martín 455", City: "Rosario",
			Province: "Santa Fe", PostalCode: "S2000", Email: "maria.gonzalez@example.com", Phone: "+54 341 555-0202",
			Donations: []entity.Donation{
				{ID: "don-004", UserID: "user-002", Date: day(2024, time.January, 22), Amount: 25, PaymentMethod: entity.PaymentCash, Status: entity.DonationCompleted},
				{ID: "don-005", UserID: "user-002", Date: day(2024, time.April, 5), Amount: 200, PaymentMethod: entity.PaymentCard, Status: entity.DonationPending},
			},
		},
		{
			ID: "user-003", FirstName: "Juan", LastName: "Pérez", NationalID: "35555666",
			BirthDate: day(1993, time.November, 21), Address: "Bv. Oroño 880", City: "Córdoba",
			Province: "Córdoba", PostalCode: "X5000", Email: "juan.perez@example.com", Phone: "+54 351 555-0303",
			Donations: []entity.Donation{
				{ID: "don-006", UserID: "user-003", Date: day(2024, time.February, 18), Amount: 10, PaymentMethod: entity.PaymentCard, Status: entity.DonationFailed},
				{ID: "don-007", UserID: "user-003", Date: day(2024, time.March, 18), Amount: 10, PaymentMethod: entity.PaymentCard, Status: entity.DonationCompleted, Recurring: true},
			},
		},
		{
			ID: "user-004", FirstName: "Lucía", LastName: "Fernández", NationalID: "40777888",
			BirthDate: day(1998, time.May, 30), Address: "Mitre 221", City: "Mendoza",
			Province: "Mendoza", PostalCode: "M5500", Email: "lucia.fernandez@example.com", Phone: "+54 261 555-0404",
			Donations: []entity.Donation{},
		},
	}
}

func seedEmergencies() []entity.Emergency {
	return []entity.Emergency{
		{
			ID:            "em-001",
			Title:         "Inundaciones en el Litoral",
			Description:   "<p>Miles de familias evacuadas necesitan <strong>alimentos no perecederos</strong> y agua potable.</p>",
			Images:        []string{"/images/emergencias/litoral-1.jpg", "/images/emergencias/litoral-2.jpg"},
			Target:        500000,
			Raised:        312500,
			DaysLeft:      12,
			Beneficiaries: 3200,
			Critical:      true,
			Updates: []entity.EmergencyUpdate{
				{Date: day(2024, time.April, 12), Title: "Primer envío", Content: "Salieron 4 camiones con 18 toneladas de alimentos."},
				{Date: day(2024, time.April, 15), Title: "Nuevos centros", Content: "Abrimos dos centros de acopio en Santa Fe."},
			},
		},
		{
			ID:            "em-002",
			Title:         "Ola de frío: comedores comunitarios",
			Description:   "<p>Los comedores duplicaron la demanda de <em>viandas calientes</em> durante el invierno.</p>",
			Images:        []string{"/images/emergencias/frio-1.jpg"},
			Target:        250000,
			Raised:        98000,
			DaysLeft:      20,
			Beneficiaries: 1800,
			Critical:      true,
			Updates: []entity.EmergencyUpdate{
				{Date: day(2024, time.June, 3), Title: "Campaña lanzada", Content: "Sumamos 35 comedores a la red."},
			},
		},
		{
			ID:            "em-003",
			Title:         "Sequía en el Norte",
			Description:   "<p>Productores rurales perdieron sus cosechas; acompañamos con <strong>bolsones de alimentos</strong>.</p>",
			Images:        []string{"/images/emergencias/sequia-1.jpg"},
			Target:        180000,
			Raised:        180000,
			DaysLeft:      0,
			Beneficiaries: 950,
			Critical:      false,
			Updates:       []entity.EmergencyUpdate{},
		},
	}
}

func seedRewards() []entity.Reward {
	return []entity.Reward{
		{ID: "rw-001", Title: "Insignia Amigo Solidario", Description: "Insignia digital para tu perfil de donante.", PointsRequired: 100, Image: "/images/rewards/amigo.png", Type: entity.RewardBadge, Active: true},
		{ID: "rw-002", Title: "Certificado de Donante", Description: "Certificado anual con el impacto de tus donaciones.", PointsRequired: 200, Image: "/images/rewards/certificado.png", Type: entity.RewardCertificate, Active: true},
		{ID: "rw-003", Title: "Visita al Centro de Distribución", Description: "Recorrido guiado por nuestro centro de distribución.", PointsRequired: 500, Image: "/images/rewards/visita.png", Type: entity.RewardExperience, Active: true, AvailableQuantity: intPtr(10), Highlighted: true},
		{ID: "rw-004", Title: "Descuento en Tienda Solidaria", Description: "15% de descuento en productos de la tienda solidaria.", PointsRequired: 300, Image: "/images/rewards/descuento.png", Type: entity.RewardDiscount, Active: true, AvailableQuantity: intPtr(25)},
		{ID: "rw-005", Title: "Insignia Héroe del Invierno", Description: "Edición limitada de la campaña de invierno.", PointsRequired: 800, Image: "/images/rewards/invierno.png", Type: entity.RewardBadge, Active: false},
	}
}

func seedUserRewards(rewards []entity.Reward) []entity.UserReward {
	byID := map[string]entity.Reward{}
	for _, r := range rewards {
		byID[r.ID] = r
	}
	return []entity.UserReward{
		{ID: "ur-001", UserID: "user-001", RewardID: "rw-002", Reward: copyReward(byID["rw-002"]), AssignedAt: day(2024, time.March, 5), Status: entity.StatusDelivered, Code: "RWRD-7K2M9Q"},
		{ID: "ur-002", UserID: "user-002", RewardID: "rw-003", Reward: copyReward(byID["rw-003"]), AssignedAt: day(2024, time.April, 20), Status: entity.StatusAssigned, Code: "RWRD-P4X8ZA", Notes: "Asignada por voluntariado destacado"},
	}
}

func seedPoints() []entity.UserPoints {
	return []entity.UserPoints{
		{
			UserID: "user-001", Total: 520, Available: 320, Spent: 200,
			History: []entity.PointTransaction{
				{ID: "tx-004", UserID: "user-001", Date: day(2024, time.March, 5), Amount: 200, Type: entity.TransactionSpent, Description: "Canje: Certificado de Donante"},
				{ID: "tx-003", UserID: "user-001", Date: day(2024, time.March, 2), Amount: 250, Type: entity.TransactionEarned, Description: "Donación campaña de invierno"},
				{ID: "tx-002", UserID: "user-001", Date: day(2024, time.February, 10), Amount: 150, Type: entity.TransactionEarned, Description: "Donación mensual"},
				{ID: "tx-001", UserID: "user-001", Date: day(2024, time.January, 10), Amount: 120, Type: entity.TransactionEarned, Description: "Bienvenida al programa"},
			},
		},
	}
}

func seedParticipants() []entity.LeaderboardParticipant {
	return []entity.LeaderboardParticipant{
		{UserID: "user-002", Name: "María González", Points: 1250},
		{UserID: "user-003", Name: "Juan Pérez", Points: 980, Anonymous: true},
		{UserID: "user-004", Name: "Lucía Fernández", Points: 760},
		{UserID: "user-005", Name: "Carlos Rodríguez", Points: 410, Anonymous: true},
		{UserID: "user-006", Name: "Ana Martínez", Points: 300},
	}
}
