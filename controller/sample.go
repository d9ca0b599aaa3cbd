package controller

import _ "embed"

// Sample is an example manifest, written by "codefactory init".
//
//go:embed sample.yaml
var Sample []byte
