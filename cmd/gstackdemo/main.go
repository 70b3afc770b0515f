// Copyright 2016 Aleksandr Demakin. All rights reserved.

package main

import "github.com/nxgtw/go-gstack/cmd/gstackdemo/cmd"

func main() {
	cmd.Execute()
}
