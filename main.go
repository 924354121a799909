/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package main

import (
	"github.com/josephgoksu/todo/cmd"
	"github.com/josephgoksu/todo/internal/logger"
)

func main() {
	defer logger.HandlePanic()
	cmd.Execute()
}
