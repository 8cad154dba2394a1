package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

var maxVehicles int = 1000
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

var oilKinds = []string{"엔진오일", "미션오일", "브레이크액", "부동액"}

func main() {
	vehicleIDs := make([]string, maxVehicles)
	for i := 0; i < maxVehicles; i++ {
		vehicleIDs[i] = uuid.NewString()
	}
	fmt.Printf("generated %v vehicle IDs\n", maxVehicles)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxVehicles; i++ {
		i := i
		wg.Add(1)
		go func() {
			insertOdometer(vehicleIDs[i])
			fmt.Printf("\rinserted odometer reading for vehicle %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rinserted odometer readings for %v vehicles: used time=%v seconds, throughput=%v action/second\n",
		maxVehicles, usedTime.Seconds(), float64(maxVehicles)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxVehicles; i++ {
		i := i
		wg.Add(1)
		go func() {
			doAction(vehicleIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v vehicles: used time=%v seconds, throughput=%v action/second\n",
		maxVehicles, usedTime.Seconds(), float64(maxVehicles*4)/usedTime.Seconds(),
	)
}

func rndOdoKm() int {
	return 50000 + int(rnd.Int31n(100000))
}

func postJSON(path string, payload any) {
	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s%s", httpHostPort, path), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("\nresponse status code != 200: %v\n", resp)
	}
}

func getPath(path string) {
	resp, err := http.Get(fmt.Sprintf("http://%s%s", httpHostPort, path))
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("\nresponse status code != 200: %v\n", resp)
	}
}

func insertOdometer(vehicleID string) {
	payload := map[string]any{
		"date":   time.Now().Format("2006-01-02"),
		"odo_km": rndOdoKm(),
	}
	postJSON(fmt.Sprintf("/vehicles/%s/odometer", vehicleID), payload)
}

func doAction(vehicleID string) {
	actions := []func(){
		genPostRecordAction(vehicleID),
		genGetStatusAction(vehicleID),
		genGetDueSummaryAction(vehicleID),
		genPostOdometerAction(vehicleID),
	}
	actionNames := []string{
		"PostRecord",
		"GetStatus",
		"GetDueSummary",
		"PostOdometer",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for vehicle %v", actionNames[index], vehicleID)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genPostRecordAction(vehicleID string) func() {
	return func() {
		payload := map[string]any{
			"category": "oil",
			"kind":     oilKinds[rnd.Int31n(int32(len(oilKinds)))],
			"date":     time.Now().Format("2006-01-02"),
			"odo_km":   rndOdoKm(),
		}
		postJSON(fmt.Sprintf("/vehicles/%s/consumables/records", vehicleID), payload)
	}
}

func genGetStatusAction(vehicleID string) func() {
	return func() {
		getPath(fmt.Sprintf("/vehicles/%s/consumables/status?category=oil", vehicleID))
	}
}

func genGetDueSummaryAction(vehicleID string) func() {
	return func() {
		getPath(fmt.Sprintf("/vehicles/%s/due-summary", vehicleID))
	}
}

func genPostOdometerAction(vehicleID string) func() {
	return func() {
		insertOdometer(vehicleID)
	}
}
