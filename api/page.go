package api

// pageTemplate renders a controller.View
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Weather App</title>
<link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.1/css/all.min.css">
</head>
<body class="{{.Theme}}">
<div class="container">
  <form class="search-container" method="post" action="/">
    <input id="cityInput" name="city" type="text" placeholder="Enter city name..." value="{{.Query}}" autofocus>
    <button id="searchBtn" type="submit"><i class="fas fa-search"></i></button>
  </form>
  {{if .Warning}}<div class="warning-message">{{.Warning}}</div>{{end}}
  {{if .Message}}<div id="errorMessage" class="error-message">{{.Message}}</div>{{end}}
  {{if .Loading}}<div id="loading" class="loading show">Loading...</div>{{end}}
  {{with .Current}}
  <section id="currentWeather" class="current-weather fade-in">
    <h2 id="cityName">{{.City}}</h2>
    <p id="currentDate">{{.Date}}</p>
    <div id="currentIcon" class="weather-icon"><i class="{{.Icon}}"></i></div>
    <div class="temperature"><span id="currentTemp">{{.Temperature}}</span>°C</div>
    <p id="currentDescription">{{.Description}}</p>
    <ul class="weather-details">
      <li>Visibility <span id="visibility">{{.Visibility}}</span></li>
      <li>Humidity <span id="humidity">{{.Humidity}}</span></li>
      <li>Wind <span id="windSpeed">{{.WindSpeed}}</span></li>
      <li>Feels like <span id="feelsLike">{{.FeelsLike}}</span></li>
    </ul>
  </section>
  {{end}}
  {{if .Forecast}}
  <section id="forecastSection" class="forecast-section fade-in">
    <h3>5-Day Forecast</h3>
    <div id="forecastContainer" class="forecast-container">
      {{range .Forecast}}
      <div class="forecast-card slide-in">
        <div class="forecast-date">{{.Label}}</div>
        <div class="forecast-icon"><i class="{{.Icon}}"></i></div>
        <div class="forecast-temp"><span class="forecast-high">{{.Temperature}}</span></div>
        <div class="forecast-description">{{.Description}}</div>
      </div>
      {{end}}
    </div>
  </section>
  {{end}}
</div>
</body>
</html>
`
