package entity

type CropType string

const (
	CropTomato   CropType = "Tomato"
	CropCucumber CropType = "Cucumber"
	CropBoth     CropType = "Both" // ใช้ได้เฉพาะใน library entry
)

// ValidForReport — report ต้องระบุพืชจริง ห้ามใช้ Both
func (c CropType) ValidForReport() bool {
	return c == CropTomato || c == CropCucumber
}

func (c CropType) ValidForLibrary() bool {
	return c == CropTomato || c == CropCucumber || c == CropBoth
}
