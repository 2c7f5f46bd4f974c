package config

import (
	"regexp"
	"runtime"
)

var goarch = runtime.GOARCH

// debianArches maps Go architectures to the dpkg names used in topic manifests.
var debianArches = map[string]string{
	"amd64":    "amd64",
	"arm64":    "arm64",
	"loong64":  "loongarch64",
	"mips64le": "loongson3",
	"ppc64le":  "ppc64el",
	"riscv64":  "riscv64",
}

func hostArch() (string, bool) {
	arch, ok := debianArches[goarch]
	return arch, ok
}

var archPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
