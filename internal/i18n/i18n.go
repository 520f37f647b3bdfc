package i18n

// Text es un par hebreo/inglés, el mismo patrón t(he, en) de las vistas
// originales.
type Text struct {
	He string
	En string
}

func T(he, en string) Text {
	return Text{He: he, En: en}
}

// In devuelve la variante del idioma pedido; cualquier idioma desconocido cae
// al inglés.
func (t Text) In(lang string) string {
	if lang == "he" {
		return t.He
	}
	return t.En
}
