// Package seed holds the built-in reference data: the login roster, the
// technician list and the reference orders a fresh store starts with.
package seed

import "servicecenter/internal/domain"

func Roster() domain.Roster {
	return domain.Roster{
		Credentials: []domain.Credential{
			{ID: "1", Login: "мастер1", Password: "пасс1", Role: domain.RoleMaster, Name: "Иван Петров"},
			{ID: "2", Login: "мастер2", Password: "пасс2", Role: domain.RoleMaster, Name: "Сергей Иванов"},
			{ID: "3", Login: "мастер3", Password: "пасс3", Role: domain.RoleMaster, Name: "Алексей Смирнов"},
			{ID: "4", Login: "мастер4", Password: "пасс4", Role: domain.RoleMaster, Name: "Дмитрий Козлов"},
			{ID: "manager", Login: "менеджер", Password: "менеджер", Role: domain.RoleManager, Name: "Менеджер"},
		},
		Masters: []domain.Master{
			{ID: "1", Name: "Иван Петров", Login: "master1"},
			{ID: "2", Name: "Сергей Иванов", Login: "master2"},
			{ID: "3", Name: "Алексей Смирнов", Login: "master3"},
			{ID: "4", Name: "Дмитрий Козлов", Login: "master4"},
		},
	}
}

func Orders() []domain.Order {
	return []domain.Order{
		{
			ID:             "1",
			DocumentNumber: "0001",
			Date:           "2024-10-28",
			Client:         `ООО "Техника"`,
			MasterID:       "1",
			RepairObject:   `Телевизор LG 55"`,
			Description:    "Не включается, подозрение на блок питания",
			ImageURL:       "https://images.unsplash.com/photo-1593784991095-a205069470b6?w=400",
			Services: []domain.Service{
				{ID: "1", Name: "Диагностика", Description: "Проверка всех систем", Price: 500},
				{ID: "2", Name: "Замена блока питания", Description: "Установка нового БП", Price: 2000},
			},
			Materials: []domain.Material{
				domain.NewMaterial("1", "Блок питания LG EAY64511101", 1, 3500),
			},
			InvoiceNumber: "ПН-0001",
			InvoiceDate:   "2024-10-27",
			Supplier:      `ООО "ЭлектроСнаб"`,
			Status:        domain.OrderStatusInProgress,
		},
		{
			ID:             "2",
			DocumentNumber: "0002",
			Date:           "2024-10-28",
			Client:         "Иванова М.А.",
			MasterID:       "2",
			RepairObject:   "Стиральная машина Samsung WW70",
			Description:    "Не отжимает белье",
			ImageURL:       "https://images.unsplash.com/photo-1626806787461-102c1bfaaea1?w=400",
			Services: []domain.Service{
				{ID: "3", Name: "Диагностика", Description: "Проверка системы отжима", Price: 400},
				{ID: "4", Name: "Замена подшипников", Description: "Замена подшипников барабана", Price: 3000},
			},
			Materials: []domain.Material{
				domain.NewMaterial("2", "Подшипник 6305", 2, 800),
				domain.NewMaterial("3", "Сальник 37x66x9.5/12", 1, 500),
			},
			InvoiceNumber: "ПН-0002",
			InvoiceDate:   "2024-10-27",
			Supplier:      `ИП "Запчасти+"`,
			Status:        domain.OrderStatusPending,
		},
		{
			ID:             "3",
			DocumentNumber: "0003",
			Date:           "2024-10-29",
			Client:         "Петров А.С.",
			MasterID:       "1",
			RepairObject:   "Холодильник Indesit DF 5200",
			Description:    "Не морозит холодильная камера",
			ImageURL:       "https://images.unsplash.com/photo-1571175443880-49e1d25b2bc5?w=400",
			Services: []domain.Service{
				{ID: "5", Name: "Диагностика", Description: "Проверка системы охлаждения", Price: 600},
				{ID: "6", Name: "Замена термостата", Description: "Установка нового термостата", Price: 1500},
			},
			Materials: []domain.Material{
				domain.NewMaterial("4", "Термостат K59-L1686", 1, 1200),
			},
			InvoiceNumber: "ПН-0003",
			InvoiceDate:   "2024-10-28",
			Supplier:      `ООО "ЭлектроСнаб"`,
			Status:        domain.OrderStatusCompleted,
		},
	}
}
