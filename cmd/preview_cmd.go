package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cuckoo711/notepreview/parse"
	"github.com/cuckoo711/notepreview/parse/title"
	"github.com/cuckoo711/notepreview/pkg"
)

type PreviewParams struct {
	Input  string `json:"input"`  // 输入文件路径
	Output string `json:"output"` // 输出文件地址，为空时打印到标准输出
}

var previewParams *PreviewParams

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "build the preview model for one file",
	Run:   previewRun,
}

func init() {
	previewParams = &PreviewParams{}
	previewCmd.Flags().StringVarP(&previewParams.Input, "input", "i", "", "input file path")
	previewCmd.Flags().StringVarP(&previewParams.Output, "output", "o", "", "output path")
}

func previewRun(cmd *cobra.Command, args []string) {
	if len(previewParams.Input) == 0 {
		fmt.Println("no input file path")
		return
	}
	exist, err := pkg.CheckFileExist(previewParams.Input)
	if err != nil {
		fmt.Println("check file exist error:", err)
		return
	}
	if !exist {
		fmt.Println("input file not exist")
		return
	}

	content, err := pkg.ReadTextFile(previewParams.Input)
	if err != nil {
		fmt.Println("read input error:", err)
		return
	}

	preview := parse.BuildPreview(content, title.NewTranslator(nil))
	out, err := json.MarshalIndent(preview, "", "  ")
	if err != nil {
		fmt.Println("encode preview error:", err)
		return
	}

	if len(previewParams.Output) == 0 {
		fmt.Println(string(out))
		return
	}
	if err := pkg.WriteTextFile(previewParams.Output, out); err != nil {
		fmt.Println("write output error:", err)
	}
}
