package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawGridDots: true,
		Colors: ConfigColors{
			Background: 234,
			GridDot:    239,
			Border:     60,
			Blocks:     [6]int{196, 46, 33, 226, 201, 51},
		},
		Symbols: ConfigSymbols{
			Block: '█',
			Empty: '·',
		},
	}

	DefaultConfig = Config{
		Theme:  DefaultTheme,
		Player: "Player1",
	}
}
