package dataset

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strconv"
)

// LoadSplit reads labeled examples from <root>/<name>/<label>/<image-file>,
// where every directory under the split is named by the integer class label.
func LoadSplit(root, name string) (Split, error) {
	split := Split{Name: name}
	splitDir := filepath.Join(root, name)
	labelDirs, err := ioutil.ReadDir(splitDir)
	if err != nil {
		return split, fmt.Errorf("unable to read split dir %q: %s", splitDir, err)
	}
	for _, ld := range labelDirs {
		if !ld.IsDir() {
			continue
		}
		label, err := strconv.Atoi(ld.Name())
		if err != nil {
			return split, fmt.Errorf("label dir %q is not an integer class label: %s", ld.Name(), err)
		}
		labelDir := filepath.Join(splitDir, ld.Name())
		files, err := ioutil.ReadDir(labelDir)
		if err != nil {
			return split, fmt.Errorf("unable to read label dir %q: %s", labelDir, err)
		}
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			img, err := ioutil.ReadFile(filepath.Join(labelDir, f.Name()))
			if err != nil {
				return split, fmt.Errorf("unable to read image %q: %s", f.Name(), err)
			}
			split.Examples = append(split.Examples, Example{
				Image: img,
				Label: label,
			})
		}
	}
	if len(split.Examples) == 0 {
		return split, fmt.Errorf("split %q under %q contains no examples", name, root)
	}
	return split, nil
}
