package glint

import "testing"

func TestHexColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{"with hash", "#FF5733", RGBColor(255, 87, 51), false},
		{"without hash", "000000", RGBColor(0, 0, 0), false},
		{"white", "FFFFFF", RGBColor(255, 255, 255), false},
		{"lowercase", "#aabbcc", RGBColor(0xaa, 0xbb, 0xcc), false},
		{"short form rejected", "#123", Color{}, true},
		{"garbage", "invalid", Color{}, true},
		{"non-hex digits", "#GGGGGG", Color{}, true},
		{"empty", "", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HexColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("HexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("HexColor(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestColor_Codes(t *testing.T) {
	tests := []struct {
		name   string
		color  Color
		wantFg string
		wantBg string
	}{
		{"default", DefaultColor(), "", ""},
		{"reset", ResetColor(), "39", "49"},
		{"red", Red, "31", "41"},
		{"white", White, "37", "47"},
		{"bright black", BrightBlack, "90", "100"},
		{"bright blue", BrightBlue, "94", "104"},
		{"bright white", BrightWhite, "97", "107"},
		{"indexed", IndexedColor(123), "38;5;123", "48;5;123"},
		{"rgb", RGBColor(10, 20, 30), "38;2;10;20;30", "48;2;10;20;30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.fgCode(); got != tt.wantFg {
				t.Errorf("fgCode() = %q, want %q", got, tt.wantFg)
			}
			if got := tt.color.bgCode(); got != tt.wantBg {
				t.Errorf("bgCode() = %q, want %q", got, tt.wantBg)
			}
		})
	}
}

func TestColor_Accessors(t *testing.T) {
	r, g, b := RGBColor(1, 2, 3).RGB()
	if r != 1 || g != 2 || b != 3 {
		t.Errorf("RGB() = (%d, %d, %d), want (1, 2, 3)", r, g, b)
	}
	if IndexedColor(42).Index() != 42 {
		t.Error("Index() != 42")
	}
	if !DefaultColor().IsDefault() {
		t.Error("DefaultColor().IsDefault() = false")
	}
	if Red.IsDefault() {
		t.Error("Red.IsDefault() = true")
	}
}

func TestColor_RGB_PanicsOnWrongType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("RGB() on a named color did not panic")
		}
	}()
	Red.RGB()
}
