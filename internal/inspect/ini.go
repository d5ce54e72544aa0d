package inspect

import "gopkg.in/ini.v1"

// INISections returns the section names of an INI document in document order,
// case preserved. go-ini already skips unparseable key lines; inputs it still
// rejects outright, such as an unclosed header, go through the fallback scan.
func INISections(data []byte) []string {
	f, err := ini.LoadSources(ini.LoadOptions{SkipUnrecognizableLines: true}, data)
	if err != nil {
		return headerScan(data, func(name string) string { return name })
	}
	var out []string
	for _, name := range f.SectionStrings() {
		if name == ini.DefaultSection {
			continue
		}
		out = append(out, name)
	}
	return out
}
