package entities

// Outfit is the visual appearance of a creature
type Outfit struct {
	LookType   uint16 `json:"look_type"`
	LookTypeEx uint16 `json:"look_type_ex"`
	LookHead   uint8  `json:"look_head"`
	LookBody   uint8  `json:"look_body"`
	LookLegs   uint8  `json:"look_legs"`
	LookFeet   uint8  `json:"look_feet"`
	LookAddons uint8  `json:"look_addons"`
}
