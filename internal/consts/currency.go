package consts

// Коды валют и инструментов, используемые напрямую в коде.
const (
	USD   = "USD"
	EUR   = "EUR"
	Brent = "BZ=F"
)
