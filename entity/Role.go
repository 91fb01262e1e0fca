package entity

// Role เป็น closed set — ห้ามเก็บ role อื่นนอกจากนี้
type Role string

const (
	RoleFarmer     Role = "farmer"
	RoleAdmin      Role = "admin"
	RoleAgronomist Role = "agronomist"
)

func (r Role) Valid() bool {
	switch r {
	case RoleFarmer, RoleAdmin, RoleAgronomist:
		return true
	}
	return false
}

// IsStaff = admin หรือ agronomist (ทีมตรวจสอบ report)
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleAgronomist
}
