package domain

// Service услуга из каталога
type Service struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes int
	Description     *string
}

// DefaultServices каталог, создаваемый при первом запуске
var DefaultServices = []Service{
	{Name: "Haircut", Price: 35.00, DurationMinutes: 30, Description: strPtr("Traditional men's haircut")},
	{Name: "Beard", Price: 25.00, DurationMinutes: 20, Description: strPtr("Beard trim with finishing")},
	{Name: "Haircut+Beard", Price: 55.00, DurationMinutes: 50, Description: strPtr("Full package")},
	{Name: "Trim", Price: 15.00, DurationMinutes: 15, Description: strPtr("Clipper finishing")},
}

func strPtr(s string) *string {
	return &s
}
