package render

import (
	"fmt"
	"io"
)

type Info struct {
	Version  string
	GLSL     string
	Renderer string
	Vendor   string
}

func ReadInfo(dev Device) Info {
	return Info{
		Version:  dev.GetString(Version),
		GLSL:     dev.GetString(ShadingLanguageVersion),
		Renderer: dev.GetString(Renderer),
		Vendor:   dev.GetString(Vendor),
	}
}

func (i Info) Fprint(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"OpenGL Version:        %s\n"+
			"GLSL Version:          %s\n"+
			"Renderer:              %s\n"+
			"Vendor:                %s\n",
		i.Version, i.GLSL, i.Renderer, i.Vendor)
	return err
}
