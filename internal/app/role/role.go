package role

type Role int

const (
	Artisan Role = iota // 0
	Admin               // 1
)

func (r Role) String() string {
	switch r {
	case Artisan:
		return "artisan"
	case Admin:
		return "admin"
	}
	return "unknown"
}
