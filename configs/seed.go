package configs

import (
	"log"

	"backend/entity"

	"golang.org/x/crypto/bcrypt"
)

// สร้าง admin ครั้งแรก
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Name:     "Admin",
		Email:    email,
		Password: string(hash),
		Role:     entity.RoleAdmin,
		Approved: true,
	}
	return db.Create(&admin).Error
}

// Seed library entry เริ่มต้น ให้หน้า identify มีของให้เลือกตั้งแต่วันแรก
func SeedLibrary() error {
	db := DB()

	var admin entity.User
	if err := db.Where("role = ?", entity.RoleAdmin).First(&admin).Error; err != nil {
		log.Println("skip seeding library: no admin user")
		return nil
	}

	entries := []entity.PestDisease{
		{
			Name:              "Tomato Hornworm",
			Type:              entity.TypePest,
			CropType:          entity.CropTomato,
			Description:       "Large green caterpillar that feeds on tomato foliage and fruit.",
			Symptoms:          "Defoliated stems, dark droppings on leaves, chewed green fruit.",
			Treatment:         "Hand-pick worms. Apply Bacillus thuringiensis (Bt) spray in the evening.",
			Prevention:        "Till soil after harvest, rotate crops, encourage parasitic wasps.",
			ImagePath:         "/uploads/seed/tomato-hornworm.jpg",
			CommonOccurrences: 12,
			CreatedByID:       admin.ID,
		},
		{
			Name:              "Early Blight",
			Type:              entity.TypeDisease,
			CropType:          entity.CropTomato,
			Description:       "Fungal disease caused by Alternaria solani, common in warm humid weather.",
			Symptoms:          "Brown spots with concentric rings on lower leaves, yellowing, leaf drop.",
			Treatment:         "Remove infected leaves. Spray copper-based fungicide weekly.",
			Prevention:        "Mulch at base, water at soil level, rotate crops yearly.",
			ImagePath:         "/uploads/seed/early-blight.jpg",
			CommonOccurrences: 20,
			CreatedByID:       admin.ID,
		},
		{
			Name:              "Cucumber Mosaic Virus",
			Type:              entity.TypeDisease,
			CropType:          entity.CropCucumber,
			Description:       "Aphid-transmitted virus causing mosaic discoloration and stunting.",
			Symptoms:          "Yellow mottled leaves, distorted fruit, stunted growth.",
			Treatment:         "Remove infected plants immediately. Control aphid vectors.",
			Prevention:        "Use resistant varieties, yellow sticky traps for aphids.",
			ImagePath:         "/uploads/seed/cmv.jpg",
			CommonOccurrences: 8,
			CreatedByID:       admin.ID,
		},
		{
			Name:              "Aphids",
			Type:              entity.TypePest,
			CropType:          entity.CropBoth,
			Description:       "Small sap-sucking insects that cluster on new growth and leaf undersides.",
			Symptoms:          "Curled leaves, sticky honeydew, sooty mold, stunted shoots.",
			Treatment:         "Spray neem oil or insecticidal soap. Knock off with strong water jet.",
			Prevention:        "Encourage ladybugs, avoid over-fertilizing with nitrogen.",
			ImagePath:         "/uploads/seed/aphids.jpg",
			CommonOccurrences: 31,
			CreatedByID:       admin.ID,
		},
	}

	for _, e := range entries {
		var count int64
		db.Model(&entity.PestDisease{}).Where("name = ?", e.Name).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&e).Error; err != nil {
			return err
		}
	}

	log.Println("library seeded")
	return nil
}
