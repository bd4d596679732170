package catalog

import (
	"strings"

	"github.com/jfcamacho/vuelacol/internal/models"
)

var locations = []models.Location{
	{Name: "Bogotá", Code: "BOG"},
	{Name: "Medellín", Code: "MDE"},
	{Name: "Cali", Code: "CLO"},
	{Name: "Cartagena", Code: "CTG"},
	{Name: "Barranquilla", Code: "BAQ"},
	{Name: "Santa Marta", Code: "SMR"},
	{Name: "San Andrés", Code: "ADZ"},
	{Name: "Pereira", Code: "PEI"},
	{Name: "Bucaramanga", Code: "BGA"},
	{Name: "Cúcuta", Code: "CUC"},
	{Name: "Armenia", Code: "AXM"},
	{Name: "Manizales", Code: "MZL"},
	{Name: "Leticia", Code: "LET"},
	{Name: "Villavicencio", Code: "VVC"},
	{Name: "Neiva", Code: "NVA"},
	{Name: "Montería", Code: "MTR"},
	{Name: "Riohacha", Code: "RCH"},
	{Name: "Quibdó", Code: "UIB"},
	{Name: "Yopal", Code: "EYP"},
	{Name: "Florencia", Code: "FLA"},
	{Name: "Valledupar", Code: "VUP"},
	{Name: "Apartadó", Code: "APO"},
	{Name: "Tumaco", Code: "TCO"},
	{Name: "Popayán", Code: "PPN"},
	{Name: "Buenaventura", Code: "BUN"},
	{Name: "Ipiales", Code: "IPI"},
	{Name: "Arauca", Code: "AUC"},
	{Name: "Mitú", Code: "MVP"},
	{Name: "Inírida", Code: "PDA"},
	{Name: "Puerto Carreño", Code: "PCR"},
}

// Locations returns the selectable city roster in display order.
func Locations() []models.Location {
	return locations
}

// LocationByCode resolves a city by its 3-letter code, case-insensitive.
func LocationByCode(code string) (models.Location, bool) {
	code = strings.ToUpper(code)
	for _, l := range locations {
		if l.Code == code {
			return l, true
		}
	}
	return models.Location{}, false
}
