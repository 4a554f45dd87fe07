package slides

const (
	DWave = "dwave"
	IBM   = "ibm"

	ibmqxEditor = "https://quantumexperience.ng.bluemix.net/qx/editor"
)

func dwaveDeck() Deck {
	return Deck{
		Name:   DWave,
		Banner: Image("images/dwave_logo.png", 500, "center").HTML(),
		Slides: map[string]Media{
			"qpu":                Image("images/dwave_qpu.jpeg", 500, ""),
			"machine":            Image("images/dwave_machine.jpg", 500, ""),
			"dwave_logo":         Image("images/dwave_logo.png", 0, ""),
			"lab":                Image("images/DWave_lab.jpg", 800, ""),
			"ibmqx":              Link(ibmqxEditor),
			"chimera":            Image("images/dwave_chimera.png", 400, ""),
			"pegasus":            Image("images/dwave_pegasus.jpg", 1000, ""),
			"annealing":          Image("images/annealing.png", 1000, "center"),
			"spectrum":           Image("images/eigenspectrum.png", 500, "center"),
			"tunneling":          Image("images/tunneling.jpeg", 500, "center"),
			"leap":               Image("images/dwave_leap.png", 600, "center"),
			"community":          Image("images/dwave_ucs.jpg", 1000, "center"),
			"papers":             Image("images/papers.jpg", 1000, "center"),
			"advantage":          Image("images/dwave_advantage.jpg", 800, "center"),
			"thanks":             Image("images/thanks.gif", 1000, "center"),
			"landscape":          Image("images/landscape.jpg", 1000, "center"),
			"software":           Image("images/dwave_sw_stack.png", 800, "center"),
			"framework":          Image("images/dwave_leap_framework.png", 800, "center"),
			"framework_detailed": Image("images/ocean_stack.png", 1000, "center"),
			"go":                 Image("images/panda.gif", 800, "center"),
		},
	}
}

func ibmDeck() Deck {
	return Deck{
		Name:   IBM,
		Banner: `<div><br><h1 align="center">The IBM Quantum Experience</h1><br></div>`,
		Slides: map[string]Media{
			"qiskit_xp":          Image("images/qiskit_xp.png", 1000, ""),
			"qiskit":             Image("images/qiskit_banner.png", 500, ""),
			"ibmqx_logo":         Image("images/IBM-cloud.jpg", 0, ""),
			"lab":                Image("images/lab.jpg", 1000, ""),
			"ibmqx":              Link(ibmqxEditor),
			"ibmq_qcc":           Image("images/ibmq_qcc.jpg", 1000, ""),
			"git":                Link("https://github.com/qiskit"),
			"quantum":            Image("https://66.media.tumblr.com/763756ea907e30b639da239618bbe2d3/tumblr_mlotjw0e2C1r4xjo2o1_500.gif", 500, "center"),
			"model":              Image("images/model.jpg", 1000, "center"),
			"community":          Image("images/community.jpg", 1000, "center"),
			"entanglement":       Image("images/entanglement.jpg", 1000, "center"),
			"aqua":               Image("images/aqua.jpg", 1000, "center"),
			"papers":             Image("images/papers.jpg", 1000, "center"),
			"execution":          Video("images/executions-week.mp4", 1000),
			"thanks":             Image("images/thanks.gif", 1000, "center"),
			"system":             Image("images/system.jpg", 1000, "center"),
			"software":           Image("images/software_stack.png", 800, "center"),
			"framework":          Image("images/qiskit-framework.png", 800, "center"),
			"framework_detailed": Image("images/qiskit-framework_detailed.png", 1000, "center"),
			"go":                 Image("images/panda.gif", 800, "center"),
		},
	}
}

// Builtin returns a fresh catalog holding the dwave and ibm decks.
func Builtin() Catalog {
	return Catalog{
		DWave: dwaveDeck(),
		IBM:   ibmDeck(),
	}
}
