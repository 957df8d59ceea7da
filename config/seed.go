package config

import (
	"log"
	"os"

	"github.com/softkr/timeheair/models"
)

func intPtr(v int) *int { return &v }

// SeedInitialData fills empty tables with the data the shop opens with:
// one admin account, the staff roster, the six-seat floor and the price
// menu. Existing rows are never touched, so this is safe on every start.
func SeedInitialData() {
	seedAdmin()
	seedStaff()
	seedSeats()
	seedServiceMenu()
}

func seedAdmin() {
	var count int64
	DB.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin"
	}

	admin := models.User{Username: "admin", Password: password}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed admin account: %v", err)
		return
	}
	log.Println("Seeded default admin account")
}

func seedStaff() {
	var count int64
	DB.Model(&models.Staff{}).Count(&count)
	if count > 0 {
		return
	}

	staff := []models.Staff{
		{ID: "staff-1", Name: "원장"},
		{ID: "staff-2", Name: "직원1"},
		{ID: "staff-3", Name: "직원2"},
		{ID: "staff-4", Name: "직원3"},
		{ID: "staff-5", Name: "직원4"},
	}
	if err := DB.Create(&staff).Error; err != nil {
		log.Printf("Failed to seed staff: %v", err)
		return
	}
	log.Println("Seeded default staff")
}

func seedSeats() {
	var count int64
	DB.Model(&models.Seat{}).Count(&count)
	if count > 0 {
		return
	}

	seats := []models.Seat{
		{ID: 1, Name: "1번 좌석", Status: models.SeatAvailable},
		{ID: 2, Name: "2번 좌석", Status: models.SeatAvailable},
		{ID: 3, Name: "3번 좌석", Status: models.SeatAvailable},
		{ID: 4, Name: "4번 좌석", Status: models.SeatAvailable},
		{ID: 5, Name: "5번 좌석", Status: models.SeatAvailable},
		{ID: 6, Name: "6번 좌석", Status: models.SeatAvailable},
	}
	if err := DB.Create(&seats).Error; err != nil {
		log.Printf("Failed to seed seats: %v", err)
		return
	}
	log.Println("Seeded default seats")
}

func seedServiceMenu() {
	var count int64
	DB.Model(&models.ServiceMenu{}).Count(&count)
	if count > 0 {
		return
	}

	menu := []models.ServiceMenu{
		// 기본 서비스
		{ID: "cut-male", Category: "기본 서비스", Name: "남자컷트", Price: intPtr(11000)},
		{ID: "cut-female", Category: "기본 서비스", Name: "여자컷트", Price: intPtr(11000)},
		{ID: "setting-dry", Category: "기본 서비스", Name: "셋팅드라이", Price: intPtr(11000)},
		{ID: "dry-male", Category: "기본 서비스", Name: "남자드라이", Price: intPtr(11000)},
		{ID: "cut-student", Category: "기본 서비스", Name: "학생 컷트(어린이)", Price: intPtr(8800)},

		// 퍼머/매직/염색
		{ID: "perm-basic", Category: "퍼머/매직/염색", Name: "기본 (건강모/일반)", PriceShort: intPtr(33000), PriceMedium: intPtr(44000), PriceLong: intPtr(66000)},
		{ID: "perm-premium", Category: "퍼머/매직/염색", Name: "고급영양 (펌/매직/염색)", PriceShort: intPtr(55000), PriceMedium: intPtr(66000), PriceLong: intPtr(88000)},
		{ID: "perm-unique", Category: "퍼머/매직/염색", Name: "유니크펌 (물펌/먹물)", PriceShort: intPtr(66000), PriceMedium: intPtr(88000), PriceLong: intPtr(110000)},
		{ID: "perm-carisma", Category: "퍼머/매직/염색", Name: "까리시마 실크펌 (매직)", PriceShort: intPtr(88000), PriceMedium: intPtr(110000), PriceLong: intPtr(165000)},
		{ID: "perm-clinic", Category: "퍼머/매직/염색", Name: "재생크리닉 (매직)", PriceShort: intPtr(110000), PriceMedium: intPtr(165000), PriceLong: intPtr(220000)},

		// 볼륨매직/셋팅
		{ID: "volume-basic", Category: "볼륨매직/셋팅", Name: "기본 (건강모/일반)", PriceShort: intPtr(66000), PriceMedium: intPtr(77000), PriceLong: intPtr(88000)},
		{ID: "volume-premium", Category: "볼륨매직/셋팅", Name: "고급영양 (염색모)", PriceShort: intPtr(77000), PriceMedium: intPtr(88000), PriceLong: intPtr(99000)},
		{ID: "volume-carisma", Category: "볼륨매직/셋팅", Name: "까리시마 실크펌 (셋팅 볼륨)", PriceShort: intPtr(110000), PriceMedium: intPtr(165000), PriceLong: intPtr(220000)},
		{ID: "volume-magic-setting", Category: "볼륨매직/셋팅", Name: "매직 셋팅", PriceShort: intPtr(88000), PriceMedium: intPtr(165000), PriceLong: intPtr(220000)},

		// 탈색/염색
		{ID: "bleach", Category: "탈색/염색", Name: "탈색", PriceShort: intPtr(33000), PriceMedium: intPtr(44000), PriceLong: intPtr(66000)},
		{ID: "dye-pay", Category: "탈색/염색", Name: "페이염색", PriceShort: intPtr(88000), PriceMedium: intPtr(143000), PriceLong: intPtr(143000)},
		{ID: "dye-miel", Category: "탈색/염색", Name: "미엘염색", PriceShort: intPtr(44000), PriceMedium: intPtr(77000), PriceLong: intPtr(110000)},

		// 두피/크리닉
		{ID: "clinic-basic", Category: "두피/크리닉", Name: "크리닉(일반)", Price: intPtr(33000)},
		{ID: "clinic-premium", Category: "두피/크리닉", Name: "고급영양", Price: intPtr(55000)},
		{ID: "clinic-regen", Category: "두피/크리닉", Name: "재생크리닉", Price: intPtr(88000)},
		{ID: "scalp-scaling", Category: "두피/크리닉", Name: "두피스켈링", Price: intPtr(33000)},
	}
	for i := range menu {
		menu[i].IsActive = true
	}
	if err := DB.Create(&menu).Error; err != nil {
		log.Printf("Failed to seed service menu: %v", err)
		return
	}
	log.Println("Seeded service menu")
}
