package images

import "strings"

// Placeholder genérico cuando no hay imagen ni default curado.
const Placeholder = "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?q=80&w=1600&auto=format&fit=crop"

const uploadsPath = "/uploads/"

// Resolve decide la URL de imagen de una vacación: una referencia absoluta se
// usa tal cual, un nombre de archivo se sirve desde la ruta estática del
// backend, y la ausencia cae al default curado por país/ciudad.
func Resolve(origin, fileName, locationName string) string {
	name := strings.TrimSpace(fileName)
	if name != "" {
		if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
			return name
		}
		return strings.TrimRight(origin, "/") + uploadsPath + name
	}
	return DefaultFor(locationName)
}

// DefaultFor busca el default curado por nombre normalizado de país o ciudad.
func DefaultFor(locationName string) string {
	key := strings.ToLower(strings.TrimSpace(locationName))
	if url, ok := defaults[key]; ok {
		return url
	}
	return Placeholder
}

var defaults = map[string]string{
	"israel":         "https://images.unsplash.com/photo-1512453979798-5ea266f8880c?q=80&w=1600&auto=format&fit=crop",
	"greece":         "https://images.unsplash.com/photo-1500530855697-b586d89ba3ee?q=80&w=1600&auto=format&fit=crop",
	"italy":          "https://images.unsplash.com/photo-1505765050516-f72dcac9c60e?q=80&w=1600&auto=format&fit=crop",
	"rome":           "https://images.unsplash.com/photo-1526152308955-7b3b1e00f59b?q=80&w=1600&auto=format&fit=crop",
	"rhodes":         "https://images.unsplash.com/photo-1600697395545-1b2a64e56810?q=80&w=1600&auto=format&fit=crop",
	"corfu":          "https://images.unsplash.com/photo-1628752068394-37be53ce38af?q=80&w=1600&auto=format&fit=crop",
	"spain":          "https://images.unsplash.com/photo-1500534314209-a25ddb2bd429?q=80&w=1600&auto=format&fit=crop",
	"barcelona":      "https://images.unsplash.com/photo-1473954768590-540b8f04f7b3?q=80&w=1600&auto=format&fit=crop",
	"france":         "https://images.unsplash.com/photo-1491553895911-0055eca6402d?q=80&w=1600&auto=format&fit=crop",
	"paris":          "https://images.unsplash.com/photo-1508057198894-247b23fe5ade?q=80&w=1600&auto=format&fit=crop",
	"athens":         "https://images.unsplash.com/photo-1516483638261-f4dbaf036963?q=80&w=1600&auto=format&fit=crop",
	"turkey":         "https://images.unsplash.com/photo-1590074070400-93c6d88a5ab3?q=80&w=1600&auto=format&fit=crop",
	"istanbul":       "https://images.unsplash.com/photo-1590074070400-93c6d88a5ab3?q=80&w=1600&auto=format&fit=crop",
	"cyprus":         "https://images.unsplash.com/photo-1519046904884-53103b34b206?q=80&w=1600&auto=format&fit=crop",
	"united kingdom": "https://images.unsplash.com/photo-1468434107316-102c1bfaaea1?q=80&w=1600&auto=format&fit=crop",
	"london":         "https://images.unsplash.com/photo-1468434107316-102c1bfaaea1?q=80&w=1600&auto=format&fit=crop",
	"thailand":       "https://images.unsplash.com/photo-1501117716987-c8e2a8505f63?q=80&w=1600&auto=format&fit=crop",
	"bangkok":        "https://images.unsplash.com/photo-1501117716987-c8e2a8505f63?q=80&w=1600&auto=format&fit=crop",
	"japan":          "https://images.unsplash.com/photo-1505067484848-0d4fd1a6461d?q=80&w=1600&auto=format&fit=crop",
	"tokyo":          "https://images.unsplash.com/photo-1505067484848-0d4fd1a6461d?q=80&w=1600&auto=format&fit=crop",
	"kyoto":          "https://images.unsplash.com/photo-1473773508845-188df298d2d1?q=80&w=1600&auto=format&fit=crop",
	"dubai":          "https://images.unsplash.com/photo-1504270997636-07ddfbd48945?q=80&w=1600&auto=format&fit=crop",
	"netherlands":    "https://images.unsplash.com/photo-1471623432079-b009d30b6729?q=80&w=1600&auto=format&fit=crop",
	"amsterdam":      "https://images.unsplash.com/photo-1471623432079-b009d30b6729?q=80&w=1600&auto=format&fit=crop",
	"germany":        "https://images.unsplash.com/photo-1505761671935-60b3a7427bad?q=80&w=1600&auto=format&fit=crop",
	"berlin":         "https://images.unsplash.com/photo-1505761671935-60b3a7427bad?q=80&w=1600&auto=format&fit=crop",
	"egypt":          "https://images.unsplash.com/photo-1544989164-31dc3c645987?q=80&w=1600&auto=format&fit=crop",
	"cairo":          "https://images.unsplash.com/photo-1544989164-31dc3c645987?q=80&w=1600&auto=format&fit=crop",
	"prague":         "https://images.unsplash.com/photo-1467269204594-9661b134dd2b?q=80&w=1600&auto=format&fit=crop",
	"norway":         "https://images.unsplash.com/photo-1469474968028-56623f02e42e?q=80&w=1600&auto=format&fit=crop",
	"iceland":        "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?q=80&w=1600&auto=format&fit=crop",
	"maldives":       "https://images.unsplash.com/photo-1500375592092-40eb2168fd21?q=80&w=1600&auto=format&fit=crop",
	"mexico":         "https://images.unsplash.com/photo-1483729558449-99ef09a8c325?q=80&w=1600&auto=format&fit=crop",
	"cancun":         "https://images.unsplash.com/photo-1483729558449-99ef09a8c325?q=80&w=1600&auto=format&fit=crop",
}
