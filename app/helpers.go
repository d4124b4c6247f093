package app

import (
	"fmt"

	"github.com/charmbracelet/log"
)

func promptPlayer(prompt string) bool {
	var res string
	for {
		fmt.Printf("%s (y/n): ", prompt)
		_, err := fmt.Scanln(&res)
		if err == nil {
			if res == "y" {
				return true
			} else if res == "n" {
				return false
			}
		} else {
			log.Error("app [promptPlayer]", "err", err, "res", res)
		}
	}
}
