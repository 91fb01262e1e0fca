package entity

// ReportStatus ตาม lifecycle: Pending → Identified → Reviewed → Resolved
// ไม่มี transition graph — set ข้ามสถานะได้ทุกทาง ตรวจแค่ว่าอยู่ใน set
type ReportStatus string

const (
	StatusPending    ReportStatus = "Pending"
	StatusIdentified ReportStatus = "Identified"
	StatusReviewed   ReportStatus = "Reviewed"
	StatusResolved   ReportStatus = "Resolved"
)

func (s ReportStatus) Valid() bool {
	switch s {
	case StatusPending, StatusIdentified, StatusReviewed, StatusResolved:
		return true
	}
	return false
}
