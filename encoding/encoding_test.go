package encoding

import "testing"

func TestLoad(t *testing.T) {
	names := []string{
		"utf-8",
		"us-ascii",
		"utf-16be",
		"utf-16le",
		"utf-32be",
		"utf-32le",
		"shift_jis",
		"cp932",
		"euc-jp",
		"jis",
		"iso-2022-jp",
	}
	for _, name := range names {
		if e := Load(name); e == nil {
			t.Errorf("Load(%q) returned nil", name)
		}
	}

	for _, name := range []string{"utf-7", "klingon", ""} {
		if e := Load(name); e != nil {
			t.Errorf("Load(%q) should return nil, got %v", name, e)
		}
	}
}

func TestLoadDecode(t *testing.T) {
	e := Load("shift_jis")
	dec := e.NewDecoder()
	s, err := dec.Bytes([]byte{0x93, 0xFA, 0x96, 0x7B, 0x8C, 0xEA})
	if err != nil {
		t.Fatalf("Failed to decode: %s", err)
	}
	if string(s) != "日本語" {
		t.Errorf("decoded %q, expected %q", s, "日本語")
	}
}
