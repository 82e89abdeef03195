package constants_test

import (
	"fmt"
	"strings"

	"github.com/agentstation/relay/pkg/constants"
)

// Example shows the default demo script.
func Example() {
	fmt.Println(strings.Join(constants.DefaultFormats, ","))
	fmt.Println(strings.Join(constants.DefaultUsers, ","))
	fmt.Println(constants.DefaultGreeting)
	fmt.Println(constants.DefaultFarewell)
	// Output:
	// txt,json,xml
	// Олена,Іван
	// Привіт усім у чаті!
	// Тільки Олена побачить це повідомлення.
}

// Example_config shows where relay looks for its config file.
func Example_config() {
	fmt.Printf("$HOME/%s.%s\n", constants.ConfigFileName, constants.ConfigFileType)
	fmt.Printf("file mode %o\n", constants.FilePermissions)
	fmt.Println(constants.ShutdownTimeout)
	// Output:
	// $HOME/.relay.yaml
	// file mode 644
	// 5s
}
