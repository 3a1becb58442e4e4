package unlayer

const sampleText = `<h1>Welcome!</h1><p>This is a sample email template.</p>`

// SampleDesign returns a one row, one column design with a single welcome text
// block. Every call allocates a new document.
func SampleDesign() *Design {
	return &Design{
		Body: &Body{
			Rows: []*Row{
				{
					Cells: []int{1},
					Columns: []*Column{
						{
							Contents: []*Content{
								NewTextContent(sampleText),
							},
						},
					},
				},
			},
		},
	}
}
