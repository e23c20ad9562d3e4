package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
)

var (
	csvFile string
)

func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a convergence study")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	studies := readCSV(csvFile)
	for _, cs := range studies {
		fmt.Printf("Title = %s, Order = %d\n", cs.title, cs.order)
		fmt.Printf("level, h, errH2, errH1, errL2\n")
		for i := range cs.level {
			fmt.Printf("%d, %v, %v, %v, %v\n",
				cs.level[i], cs.h[i], cs.errH2[i], cs.errH1[i], cs.errL2[i])
		}
		fmt.Printf("observed orders (H2, H1, L2):\n")
		for i := 1; i < len(cs.level); i++ {
			hRatio := math.Log(cs.h[i-1] / cs.h[i])
			fmt.Printf("%d -> %d: %6.3f, %6.3f, %6.3f\n",
				cs.level[i-1], cs.level[i],
				math.Log(cs.errH2[i-1]/cs.errH2[i])/hRatio,
				math.Log(cs.errH1[i-1]/cs.errH1[i])/hRatio,
				math.Log(cs.errL2[i-1]/cs.errL2[i])/hRatio)
		}
	}
}

type ConvergenceStudy struct {
	title               string
	order               int
	level               []int
	h                   []float64
	errH2, errH1, errL2 []float64
}

func NewConvergenceStudy(title string, order int) *ConvergenceStudy {
	return &ConvergenceStudy{
		title: title,
		order: order,
	}
}

func (cs *ConvergenceStudy) Add(level int, h, errH2, errH1, errL2 float64) {
	cs.level = append(cs.level, level)
	cs.h = append(cs.h, h)
	cs.errH2 = append(cs.errH2, errH2)
	cs.errH1 = append(cs.errH1, errH1)
	cs.errL2 = append(cs.errL2, errL2)
}

func readCSV(csvFile string) (studies map[string]*ConvergenceStudy) {
	var (
		records             [][]string
		err                 error
		f                   *os.File
		ok                  bool
		cs                  *ConvergenceStudy
		h                   float64
		errH2, errH1, errL2 float64
	)
	studies = make(map[string]*ConvergenceStudy)
	if f, err = os.Open(csvFile); err != nil {
		panic(err)
	}
	r := csv.NewReader(bufio.NewReader(f))
	if records, err = r.ReadAll(); err != nil {
		panic(err)
	}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		title, leveltxt, ntxt, htxt := rec[0], rec[1], rec[2], rec[3]
		n, _ := strconv.Atoi(ntxt)
		level, _ := strconv.Atoi(leveltxt)
		_, _ = fmt.Sscanf(htxt, "%f", &h)
		combTitle := title + ntxt
		if cs, ok = studies[combTitle]; !ok {
			cs = NewConvergenceStudy(title, n)
			studies[combTitle] = cs
		}
		_, _ = fmt.Sscanf(rec[4], "%f", &errH2)
		_, _ = fmt.Sscanf(rec[5], "%f", &errH1)
		_, _ = fmt.Sscanf(rec[6], "%f", &errL2)
		cs.Add(level, h, errH2, errH1, errL2)
	}
	return
}
