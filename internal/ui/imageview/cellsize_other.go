//go:build !unix

package imageview

func getCellSize() (cellW, cellH int) {
	return kittyCellW, kittyCellH
}
