//go:build unit
// +build unit

package slides

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinLookup(t *testing.T) {
	c := Builtin()
	assert.Equal(t, []string{DWave, IBM}, c.Names())

	tests := []struct {
		deck  string
		slide string
		want  string
	}{
		{deck: DWave, slide: "qpu", want: `<img src="images/dwave_qpu.jpeg" width="500 px">`},
		{deck: DWave, slide: "spectrum", want: `<img src="images/eigenspectrum.png" width="500 px" align="center">`},
		{deck: DWave, slide: "framework_detailed", want: `<img src="images/ocean_stack.png" width="1000 px" align="center">`},
		{deck: DWave, slide: "ibmqx", want: `<a href="https://quantumexperience.ng.bluemix.net/qx/editor" target="_blank">https://quantumexperience.ng.bluemix.net/qx/editor</a>`},
		{deck: IBM, slide: "ibmqx_logo", want: `<img src="images/IBM-cloud.jpg">`},
		{deck: IBM, slide: "execution", want: `<video src="images/executions-week.mp4" width="1000 px" autoplay></video>`},
		{deck: IBM, slide: "software", want: `<img src="images/software_stack.png" width="800 px" align="center">`},
	}
	for _, tt := range tests {
		t.Run(tt.deck+"/"+tt.slide, func(t *testing.T) {
			m, err := c.Lookup(tt.deck, tt.slide)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.HTML())
		})
	}
}

func TestBuiltinBanners(t *testing.T) {
	c := Builtin()
	assert.Equal(t, `<img src="images/dwave_logo.png" width="500 px" align="center">`, c[DWave].Banner)
	assert.Equal(t, `<div><br><h1 align="center">The IBM Quantum Experience</h1><br></div>`, c[IBM].Banner)
	assert.Len(t, c[DWave].Slides, 20)
	assert.Len(t, c[IBM].Slides, 20)
}

func TestLookupNotFound(t *testing.T) {
	c := Builtin()
	_, err := c.Lookup("rigetti", "qpu")
	assert.ErrorIs(t, err, ErrDeckNotFound)
	_, err = c.Lookup(IBM, "pegasus")
	assert.ErrorIs(t, err, ErrSlideNotFound)
}

func TestSlideNames(t *testing.T) {
	d := Deck{Slides: map[string]Media{"b": Link("x"), "a": Link("y")}}
	assert.Equal(t, []string{"a", "b"}, d.SlideNames())
}

func TestClone(t *testing.T) {
	c := Builtin()
	cp := c.Clone()
	cp[IBM].Slides["lab"] = Image("images/other.jpg", 10, "")
	delete(cp, DWave)

	m, err := c.Lookup(IBM, "lab")
	require.NoError(t, err)
	assert.Equal(t, "images/lab.jpg", m.Src)
	assert.Contains(t, c, DWave)
}

func TestMerge(t *testing.T) {
	blob := heredoc.Doc(`
		[deck.ibm]
		banner = "<h1>Qiskit</h1>"
		[deck.ibm.slide.lab]
		kind = "image"
		src = "images/new_lab.jpg"
		width = 600

		[deck.workshop.slide.intro]
		kind = "video"
		src = "media/intro.mp4"
		width = 800
	`)
	base := Builtin()
	c, err := base.Merge([]byte(blob))
	require.NoError(t, err)

	assert.Equal(t, []string{DWave, IBM, "workshop"}, c.Names())
	assert.Equal(t, "<h1>Qiskit</h1>", c[IBM].Banner)
	lab, err := c.Lookup(IBM, "lab")
	require.NoError(t, err)
	assert.Equal(t, Image("images/new_lab.jpg", 600, ""), lab)
	_, err = c.Lookup(IBM, "git")
	assert.NoError(t, err)

	intro, err := c.Lookup("workshop", "intro")
	require.NoError(t, err)
	assert.Equal(t, `<video src="media/intro.mp4" width="800 px" autoplay></video>`, intro.HTML())

	orig, err := base.Lookup(IBM, "lab")
	require.NoError(t, err)
	assert.Equal(t, "images/lab.jpg", orig.Src)
}

func TestMergeInvalid(t *testing.T) {
	blob := heredoc.Doc(`
		[deck.bad.slide.one]
		kind = "audio"
		src = "a.mp3"
		[deck.bad.slide.two]
		kind = "image"
	`)
	_, err := Builtin().Merge([]byte(blob))
	assert.ErrorIs(t, err, ErrInvalidMedia)

	_, err = Builtin().Merge([]byte("[deck"))
	assert.Error(t, err)
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decks.toml")
	require.NoError(t, os.WriteFile(path, []byte(heredoc.Doc(`
		[deck.dwave.slide.advantage2]
		kind = "link"
		src = "https://www.dwavesys.com"
	`)), 0644))
	c, err := LoadCatalog(path)
	require.NoError(t, err)
	m, err := c.Lookup(DWave, "advantage2")
	require.NoError(t, err)
	assert.Equal(t, KindLink, m.Kind)

	_, err = LoadCatalog(path + ".missing")
	assert.Error(t, err)
}
