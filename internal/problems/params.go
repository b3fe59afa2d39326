package problems

import "fmt"

func unknownParam(name string) error {
	return fmt.Errorf("problems: unknown parameter %q", name)
}
