package config

const (
	SettingsWidth  = 420
	SettingsHeight = 400
	SettingsTitle  = "Crosshair Overlay - Settings"
	OverlayTitle   = "Crosshair Overlay"

	// Slider layout
	SliderX       = 20
	SliderY       = 40
	SliderWidth   = 380
	SliderHeight  = 14
	SliderSpacing = 48

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 32
	ButtonX      = 20
	ColorButtonY = 236
	AboutButtonY = 340

	// Style selector
	StyleSelectorY      = 296
	StyleSelectorHeight = 28

	SwatchSize = 32

	AboutTitle  = "About Crosshair Overlay"
	AboutAuthor = "yrvt"
	AboutURL    = "https://github.com/RevoltadoxDK"
	AboutText   = "Crosshair Overlay - open source project\n\n" +
		"Developed by " + AboutAuthor + "\n\n" +
		"GitHub repository:\n" + AboutURL + "\n\n" +
		"Available as an executable and as free source code.\n" +
		"Settings are saved to " + DefaultPath + " next to the program."
)
