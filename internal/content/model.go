package content

// MenuItem is one dish or drink as served to the frontend. Price stays a
// free-text string; no currency arithmetic happens anywhere.
type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	Historical  string   `json:"historical"`
}

type MenuCategory struct {
	Title string     `json:"title"`
	Items []MenuItem `json:"items"`
}

// Menu is the fixed three-category structure. The categories are always
// present in a response, even when empty.
type Menu struct {
	CafesYBebidas MenuCategory `json:"cafes y bebidas"`
	Autor         MenuCategory `json:"autor"`
	Pasteleria    MenuCategory `json:"pasteleria"`
}

const (
	CategoryCafesYBebidas = "cafes y bebidas"
	CategoryAutor         = "autor"
	CategoryPasteleria    = "pasteleria"
)

// NewMenu returns the empty three-category skeleton with display titles set
// and non-nil item slices so empty categories serialize as [].
func NewMenu() Menu {
	return Menu{
		CafesYBebidas: MenuCategory{Title: "Cafes y Bebidas", Items: []MenuItem{}},
		Autor:         MenuCategory{Title: "Cocina de Autor", Items: []MenuItem{}},
		Pasteleria:    MenuCategory{Title: "Pastelería", Items: []MenuItem{}},
	}
}

// category maps a normalized key to its bucket, nil for unknown keys.
func (m *Menu) category(key string) *MenuCategory {
	switch key {
	case CategoryCafesYBebidas:
		return &m.CafesYBebidas
	case CategoryAutor:
		return &m.Autor
	case CategoryPasteleria:
		return &m.Pasteleria
	default:
		return nil
	}
}

// Event is rebuilt per request from live rows or the fallback sequence;
// nothing is cached or persisted here.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Capacity    int    `json:"capacity"`
}
