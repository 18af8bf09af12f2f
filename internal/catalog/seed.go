package catalog

import "catalog-service/internal/models"

// seedItems is the reference catalog loaded on every process start.
var seedItems = []models.Item{
	{ID: 0, SKU: "10050", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "BUTTERMILK BISCUIT MIX", Category: "Cat 6 Mix Cookie-Biscuit-Pancake-Churro", Price: "212"},
	{ID: 1, SKU: "10058", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "BISCUIT AND SCONE MIX S/O ", Category: "Cat 6 Mix Cookie-Biscuit-Pancake-Churro", Price: "203"},
	{ID: 2, SKU: "10065", Pack: "BAG", Size: "30#", Brand: "WESTCO", Item: "SCRUMPTIOUS SCONE MIX", Category: "Cat 6 Mix Cookie-Biscuit-Pancake-Churro", Price: "290"},
	{ID: 3, SKU: "31566", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "ALL NATURAL SCONE MIX S/O", Category: "Cat 6 Mix Cookie-Biscuit-Pancake-Churro", Price: "277"},
	{ID: 4, SKU: "10920", Pack: "BAG", Size: "25#", Brand: "WESTCO", Item: "BUTTERMILK PANCAKE MIX", Category: "Cat 6 Mix Cookie-Biscuit-Pancake-Churro", Price: "30"},
	{ID: 5, SKU: "39965", Pack: "BOX", Size: "50#", Brand: "BAKEMA", Item: "NO TIME BREAD BASE", Category: "Cat 4 Mixes Bread Tortilla", Price: "126"},
	{ID: 6, SKU: "30998", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "KOLACHE MIX GENUINE ", Category: "Cat 4 Mixes Bread Tortilla", Price: "12"},
	{ID: 7, SKU: "12672", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "KOLACHE MIX  ORIGINAL  S/O", Category: "Cat 4 Mixes Bread Tortilla", Price: "19"},
	{ID: 8, SKU: "30821", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "ENGLISH MUFFIN CONCENTRATE", Category: "Cat 4 Mixes Bread Tortilla", Price: "272"},
	{ID: 9, SKU: "4474", Pack: "BOX", Size: "50#", Brand: "CARAVN", Item: "DINNER ROLL #20 ", Category: "Cat 20 Caravan", Price: "97"},
	{ID: 10, SKU: "12458", Pack: "CTN", Size: "50#", Brand: "CARAVA", Item: "BREAD BASE  #14 TFF S/O", Category: "Cat 20 Caravan", Price: "223"},
	{ID: 11, SKU: "6746", Pack: "CTN", Size: "50#", Brand: "CARAVA", Item: "POTATO  FRESH BAKED  #10 BASE ", Category: "Cat 20 Caravan", Price: "240"},
	{ID: 12, SKU: "16204", Pack: "CTN", Size: "50#", Brand: "CARAVA", Item: "2X HEART OF RYE BASE", Category: "Cat 20 Caravan", Price: "11"},
	{ID: 13, SKU: "16002", Pack: "CTN", Size: "50#", Brand: "CARAVA", Item: "BLACK RUSSIAN PUMPRNICKEL ", Category: "Cat 20 Caravan", Price: "202"},
	{ID: 14, SKU: "20315", Pack: "CTN", Size: "50#", Brand: "CARAVA", Item: "HALF AND HALF DARK PUMPERNICKEL", Category: "Cat 20 Caravan", Price: "28"},
	{ID: 15, SKU: "9976", Pack: "BOX", Size: "50#", Brand: "WESTCO", Item: "BAGEL 5% BASE NB", Category: "Cat 4 Mixes Bread Tortilla", Price: "90"},
	{ID: 16, SKU: "20519", Pack: "CTN", Size: "60#", Brand: "CARAVA", Item: "BAGEL-EZE-5%", Category: "Cat 20 Caravan", Price: "294"},
	{ID: 17, SKU: "12348", Pack: "CTN", Size: "3/15#", Brand: "CARAVA", Item: "NY CINN RAISIN BAGEL", Category: "Cat 20 Caravan", Price: "161"},
	{ID: 18, SKU: "12346", Pack: "CTN", Size: "5/10#", Brand: "CARAVA", Item: "NY BEST BAGEL", Category: "Cat 20 Caravan", Price: "78"},
	{ID: 19, SKU: "12347", Pack: "CTN", Size: "2/20#", Brand: "CARAVA", Item: "GREAT GRAIN BAGEL BASE ", Category: "Cat 20 Caravan", Price: "227"},
	{ID: 20, SKU: "16240", Pack: "CTN", Size: "3/15#", Brand: "CARAVA", Item: "NY TRU-BLUE BAGEL  S/O ", Category: "Cat 20 Caravan", Price: "194"},
	{ID: 21, SKU: "15025", Pack: "CSE", Size: "3/16#", Brand: "CARAVA", Item: "SOFTEE PRETZEL MIX S/O ", Category: "Cat 20 Caravan", Price: "260"},
	{ID: 22, SKU: "9969", Pack: "BOX", Size: "50#", Brand: "WESTCO", Item: "SUTTER'S MILL SOUR DO 10%", Category: "Cat 4 Mixes Bread Tortilla", Price: "280"},
	{ID: 23, SKU: "40021", Pack: "BAG", Size: "50#", Brand: "BAKEMA", Item: "EXTRA SOUR DOUGH 10%", Category: "Cat 4 Mixes Bread Tortilla", Price: "10"},
	{ID: 24, SKU: "15036", Pack: "CSE", Size: "50#", Brand: "CARAVA", Item: "BIG '49ER", Category: "Cat 20 Caravan", Price: "206"},
	{ID: 25, SKU: "16307", Pack: "CTN", Size: "50#", Brand: "CARAVA", Item: "PACIFIC SOUR", Category: "Cat 20 Caravan", Price: "24"},
	{ID: 26, SKU: "5576", Pack: "CTN", Size: "45#", Brand: "CARAVA", Item: "ALL PURPOSE WHITE SOUR S/O ", Category: "Cat 20 Caravan", Price: "11"},
	{ID: 27, SKU: "30125", Pack: "BAG", Size: "50#", Brand: "TRIGAL", Item: "BOLILLO INTREGRAL 100% MIX", Category: "Cat 4 Mixes Bread Tortilla", Price: "190"},
	{ID: 28, SKU: "39978", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "SQUAW BREAD MIX", Category: "Cat 4 Mixes Bread Tortilla", Price: "287"},
	{ID: 29, SKU: "12358", Pack: "CTN", Size: "35#", Brand: "CARAVA", Item: "INDIAN GRAIN BREAD BASE ", Category: "Cat 20 Caravan", Price: "58"},
	{ID: 30, SKU: "39987", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "BAVARIAN GRAIN 50%", Category: "Cat 4 Mixes Bread Tortilla", Price: "175"},
	{ID: 31, SKU: "12199", Pack: "CTN", Size: "50#", Brand: "CARAVA", Item: "7 GRAIN BREAD MIX ", Category: "Cat 20 Caravan", Price: "167"},
	{ID: 32, SKU: "16006", Pack: "CTN", Size: "50#", Brand: "CARAVA", Item: "8 GRAIN BREAD MIX S/O", Category: "Cat 20 Caravan", Price: "72"},
	{ID: 33, SKU: "12305", Pack: "CTN", Size: "50#", Brand: "CARAVA", Item: "CRACK'N GOOD WHEAT BASE ", Category: "Cat 20 Caravan", Price: "148"},
	{ID: 34, SKU: "10039", Pack: "CTN", Size: "50#", Brand: "CARAVA", Item: "PRISTINE CRACK N GOOD WHEAT BREAD BASE S/O", Category: "Cat 20 Caravan", Price: "86"},
	{ID: 35, SKU: "15032", Pack: "CSE", Size: "50#", Brand: "CARAVA", Item: "EURO GRAIN BASE HALF N HALF ", Category: "Cat 20 Caravan", Price: "108"},
	{ID: 36, SKU: "1537", Pack: "BOX", Size: "50#", Brand: "CARAVA", Item: "HONEY WHEAT GRAIN BASE HALF & HALF ", Category: "Cat 20 Caravan", Price: "43"},
	{ID: 37, SKU: "15028", Pack: "CSE", Size: "38#", Brand: "CARAVA", Item: "HEARTLAND CRACKED WHEAT S/O", Category: "Cat 20 Caravan", Price: "114"},
	{ID: 38, SKU: "31676", Pack: "BAG", Size: "24#", Brand: "WESTCO", Item: "PIZZA CRUST MIX S/O ", Category: "Cat 4 Mixes Bread Tortilla", Price: "144"},
	{ID: 39, SKU: "31768", Pack: "BAG", Size: "24#", Brand: "CONCOR", Item: "PIZZA MIX S/O", Category: "Cat 4 Mixes Bread Tortilla", Price: "282"},
	{ID: 40, SKU: "40009", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "ARTISAN BASE", Category: "Cat 4 Mixes Bread Tortilla", Price: "213"},
	{ID: 41, SKU: "66074", Pack: "CTN", Size: "50#", Brand: "CARAVN", Item: "HALF & HALF ARTISAN BREAD BASE S/O", Category: "Cat 20 Caravan", Price: "271"},
	{ID: 42, SKU: "39994", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "SUNDRIED TOMATO BASE 50% S/O", Category: "Cat 4 Mixes Bread Tortilla", Price: "293"},
	{ID: 43, SKU: "15555", Pack: "CTN", Size: "50#", Brand: "CARAVA", Item: "CALIFORNIA SUNDRIED TOMATO BASE S/O ", Category: "Cat 20 Caravan", Price: "24"},
	{ID: 44, SKU: "58425", Pack: "CTN", Size: "25#", Brand: "CARAVA", Item: "TOMATO MEISTER S/O ", Category: "Cat 20 Caravan", Price: "214"},
	{ID: 45, SKU: "31632", Pack: "BAG", Size: "50#", Brand: "TRIGAL", Item: "BOLILLO MIX", Category: "Cat 4 Mixes Bread Tortilla", Price: "177"},
	{ID: 46, SKU: "40027", Pack: "BOX", Size: "50#", Brand: "WESTCO", Item: "PLUS GREAT CRUSTY BASE", Category: "Cat 4 Mixes Bread Tortilla", Price: "173"},
	{ID: 47, SKU: "15055", Pack: "CSE", Size: "50#", Brand: "CARAVA", Item: "DANUBE VII TFF NB", Category: "Cat 20 Caravan", Price: "197"},
	{ID: 48, SKU: "16353", Pack: "CTN", Size: "50#", Brand: "CARAVA", Item: "ITALIAN SLIPPER BREAD BASE", Category: "Cat 20 Caravan", Price: "233"},
	{ID: 49, SKU: "20608", Pack: "CSE", Size: "50#", Brand: "CARAVA", Item: "PANE LUCIANE BASE S/O ", Category: "Cat 20 Caravan", Price: "283"},
	{ID: 50, SKU: "31811", Pack: "BAG", Size: "50#", Brand: "DNCN HNZ", Item: "PROFESSIONAL WHITE CAKE MIX", Category: "Cat 3 Mixes, Muffin, Cake", Price: "76"},
	{ID: 51, SKU: "9902", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "WHITE/GOLD VELVET CAKE MIX", Category: "Cat 3 Mixes, Muffin, Cake", Price: "71"},
	{ID: 52, SKU: "9903", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "123 WHITE/YELLOW CAKE MIX", Category: "Cat 3 Mixes, Muffin, Cake", Price: "260"},
	{ID: 53, SKU: "9912", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "EXTRA MOIST WHITE CAKE", Category: "Cat 3 Mixes, Muffin, Cake", Price: "289"},
	{ID: 54, SKU: "39912", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "EXTRA RICH WHITE CAKE", Category: "Cat 3 Mixes, Muffin, Cake", Price: "73"},
	{ID: 55, SKU: "9928", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "STERLING CLASSIC WHITE CAKE S/O", Category: "Cat 3 Mixes, Muffin, Cake", Price: "65"},
	{ID: 56, SKU: "13010", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "HIGH ALTITUDE COMPLETE WHITE CAKE S/O", Category: "Cat 3 Mixes, Muffin, Cake", Price: "276"},
	{ID: 57, SKU: "31751", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "MILE HIGH WHITE CAKE S/O ", Category: "Cat 3 Mixes, Muffin, Cake", Price: "94"},
	{ID: 58, SKU: "31812", Pack: "BAG", Size: "50#", Brand: "DNCN HNZ", Item: "PROFESSIONAL YELLLOW CAKE MIX", Category: "Cat 3 Mixes, Muffin, Cake", Price: "137"},
	{ID: 59, SKU: "9903", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "123 WHITE/YELLOW CAKE MIX", Category: "Cat 3 Mixes, Muffin, Cake", Price: "229"},
	{ID: 60, SKU: "9916", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "EXTRA MOIST FRENCH VANILLA CAKE MIX", Category: "Cat 3 Mixes, Muffin, Cake", Price: "35"},
	{ID: 61, SKU: "39908", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "EXTRA RICH YELLOW CAKE MIX", Category: "Cat 3 Mixes, Muffin, Cake", Price: "174"},
	{ID: 62, SKU: "31810", Pack: "BAG", Size: "50#", Brand: "DNCN HNZ", Item: "PROFESSIONAL DEVILS FOOD CAKE", Category: "Cat 3 Mixes, Muffin, Cake", Price: "263"},
	{ID: 63, SKU: "9905", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "DARK VELVET CHOC CAKE MIX", Category: "Cat 3 Mixes, Muffin, Cake", Price: "64"},
	{ID: 64, SKU: "9906", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "123 CHOC DEVILS FOOD CAKE ", Category: "Cat 3 Mixes, Muffin, Cake", Price: "294"},
	{ID: 65, SKU: "9914", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "EXTRA MOIST DEVILS FOOD CAKE MIX", Category: "Cat 3 Mixes, Muffin, Cake", Price: "152"},
	{ID: 66, SKU: "9933", Pack: "BAG", Size: "30#", Brand: "WESTCO", Item: "ROYAL DUTCH CAKE BASE", Category: "Cat 3 Mixes, Muffin, Cake", Price: "25"},
	{ID: 67, SKU: "39914", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "FAT FREE MUFFIN MIX", Category: "Cat 3 Mixes, Muffin, Cake", Price: "12"},
	{ID: 68, SKU: "12800", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "COMPLETE CHOC CAKE MX S/O ", Category: "Cat 3 Mixes, Muffin, Cake", Price: "147"},
	{ID: 69, SKU: "9918", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "SUNSHINE SPONGE CAKE MIX  ", Category: "Cat 3 Mixes, Muffin, Cake", Price: "148"},
	{ID: 70, SKU: "31104", Pack: "BAG", Size: "50#", Brand: "TRIGAL", Item: "TRES LECHES CAKE CHOCOLATE ", Category: "Cat 3 Mixes, Muffin, Cake", Price: "299"},
	{ID: 71, SKU: "34943", Pack: "BAG", Size: "50#", Brand: "TRIGAL", Item: "TRES LECHES CAKE MIX", Category: "Cat 3 Mixes, Muffin, Cake", Price: "287"},
	{ID: 72, SKU: "9923", Pack: "BAG", Size: "25#", Brand: "WESTCO", Item: "ANGEL FOOD CAKE \\\"MAGIC\\\" ", Category: "Cat 3 Mixes, Muffin, Cake", Price: "148"},
	{ID: 73, SKU: "39926", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "14K TEA CAKE", Category: "Cat 3 Mixes, Muffin, Cake", Price: "58"},
	{ID: 74, SKU: "31712", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "RED VELVET CAKE MIX", Category: "Cat 3 Mixes, Muffin, Cake", Price: "50"},
	{ID: 75, SKU: "31598", Pack: "BAG", Size: "30#", Brand: "WESTCO", Item: "COMPLETE CARROT CAKE W/O NUTS", Category: "Cat 3 Mixes, Muffin, Cake", Price: "31"},
	{ID: 76, SKU: "11962", Pack: "BAG", Size: "30#", Brand: "WESTCO", Item: "INSTANT CHEESECAKE MIX", Category: "Cat 3 Mixes, Muffin, Cake", Price: "198"},
	{ID: 77, SKU: "15017", Pack: "BOX", Size: "50#", Brand: "CARAVA", Item: "YOGURT CHOC CAKE BASE", Category: "Cat 3 Mixes, Muffin, Cake", Price: "267"},
	{ID: 78, SKU: "58374", Pack: "CTN", Size: "50#", Brand: "CARAVA", Item: "YOGURT CAKE BASE ", Category: "Cat 3 Mixes, Muffin, Cake", Price: "92"},
	{ID: 79, SKU: "1641", Pack: "BAG", Size: "50#", Brand: "CARAVA", Item: "SPICE COOKIE & CAKE MIX", Category: "Cat 3 Mixes, Muffin, Cake", Price: "20"},
	{ID: 80, SKU: "9910", Pack: "BAG", Size: "30#", Brand: "WESTCO", Item: "PUD'N-CREME CAKE MIX", Category: "Cat 3 Mixes, Muffin, Cake", Price: "13"},
	{ID: 81, SKU: "10087", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "CREME CAKE MIX", Category: "Cat 3 Mixes, Muffin, Cake", Price: "59"},
	{ID: 82, SKU: "30249", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "ULTRA RICH VANILLA CR√©ME CAKE MIX", Category: "Cat 3 Mixes, Muffin, Cake", Price: "299"},
	{ID: 83, SKU: "31574", Pack: "BAG", Size: "30#", Brand: "WESTCO", Item: "CLASSIC CREME CAKE MIX", Category: "Cat 3 Mixes, Muffin, Cake", Price: "180"},
	{ID: 84, SKU: "31591", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "CLASSIC CREME CAKE MIX", Category: "Cat 3 Mixes, Muffin, Cake", Price: "249"},
	{ID: 85, SKU: "11644", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "ULTRARICH CREME CAKE MIX", Category: "Cat 3 Mixes, Muffin, Cake", Price: "280"},
	{ID: 86, SKU: "30843", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "ALL NATURAL CREME CAKE MX", Category: "Cat 3 Mixes, Muffin, Cake", Price: "240"},
	{ID: 87, SKU: "20808", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "GREEK YOGURT CR√©ME CAKE MIX", Category: "Cat 3 Mixes, Muffin, Cake", Price: "216"},
	{ID: 88, SKU: "11615", Pack: "BAG", Size: "25#", Brand: "WESTCO", Item: "NO SUGAR ADDED CREME CAKE", Category: "Cat 3 Mixes, Muffin, Cake", Price: "12"},
	{ID: 89, SKU: "9931", Pack: "BAG", Size: "30#", Brand: "WESTCO", Item: "EXTRA MOIST MUFFIN MIX", Category: "Cat 3 Mixes, Muffin, Cake", Price: "196"},
	{ID: 90, SKU: "10080", Pack: "BAG", Size: "30#", Brand: "WESTCO", Item: "ADD WATER ONLY MUFFIN", Category: "Cat 3 Mixes, Muffin, Cake", Price: "208"},
	{ID: 91, SKU: "10082", Pack: "BAG", Size: "30#", Brand: "WESTCO", Item: "DELIGHTFUL MUFFIN MIX-LOW/FAT", Category: "Cat 3 Mixes, Muffin, Cake", Price: "132"},
	{ID: 92, SKU: "10042", Pack: "BAG", Size: "30#", Brand: "WESTCO", Item: "FAT FREE MUFFIN MIX", Category: "Cat 3 Mixes, Muffin, Cake", Price: "109"},
	{ID: 93, SKU: "46479", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "D-LUX CREME CAKE", Category: "Cat 3 Mixes, Muffin, Cake", Price: "174"},
	{ID: 94, SKU: "10046", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "QUICK KREME CAKE MIX", Category: "Cat 3 Mixes, Muffin, Cake", Price: "167"},
	{ID: 95, SKU: "31469", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "HIGH ALTITUDE BASIC CREME CAKE S/O ", Category: "Cat 3 Mixes, Muffin, Cake", Price: "85"},
	{ID: 96, SKU: "9921", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "VARIETY LOAF CAKE MIX S/O ", Category: "Cat 3 Mixes, Muffin, Cake", Price: "111"},
	{ID: 97, SKU: "46829", Pack: "BAG", Size: "30#", Brand: "WESTCO", Item: "STERLING PUDDING CAKE MIX S/O ", Category: "Cat 3 Mixes, Muffin, Cake", Price: "112"},
	{ID: 98, SKU: "17820", Pack: "CSE", Size: "25#", Brand: "KRUSTE", Item: "BASIC MUFFIN MIX ADD WATER ONLY", Category: "Cat 3 Mixes, Muffin, Cake", Price: "121"},
	{ID: 99, SKU: "9961", Pack: "BAG", Size: "30#", Brand: "WESTCO", Item: "CHOC PUD'N CREAM CAKE MIX", Category: "Cat 3 Mixes, Muffin, Cake", Price: "274"},
	{ID: 100, SKU: "10074", Pack: "BAG", Size: "30#", Brand: "WESTCO", Item: "IMPERIAL CHOC MUFFIN MIX", Category: "Cat 3 Mixes, Muffin, Cake", Price: "130"},
	{ID: 101, SKU: "11608", Pack: "BAG", Size: "30#", Brand: "WESTCO", Item: "CHOCOLATE CREAM CAKE MIX", Category: "Cat 3 Mixes, Muffin, Cake", Price: "139"},
	{ID: 102, SKU: "31606", Pack: "BAG", Size: "30#", Brand: "WESTCO", Item: "CLASSIC CHOC CREME CAKE", Category: "Cat 3 Mixes, Muffin, Cake", Price: "255"},
	{ID: 103, SKU: "11616", Pack: "BAG", Size: "25#", Brand: "WESTCO", Item: "NO SUGAR ADDED CHOCOLATE CREME CAKE", Category: "Cat 3 Mixes, Muffin, Cake", Price: "17"},
	{ID: 104, SKU: "9950", Pack: "BAG", Size: "40#", Brand: "WESTCO", Item: "BRAN MUFFIN MIX", Category: "Cat 3 Mixes, Muffin, Cake", Price: "164"},
	{ID: 105, SKU: "9952", Pack: "BAG", Size: "30#", Brand: "WESTCO", Item: "4-BRAN MUFFIN", Category: "Cat 3 Mixes, Muffin, Cake", Price: "279"},
	{ID: 106, SKU: "9962", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "OAT BRAN MUFFIN MIX", Category: "Cat 3 Mixes, Muffin, Cake", Price: "295"},
	{ID: 107, SKU: "48268", Pack: "BAG", Size: "30#", Brand: "WESTCO", Item: "GOURMET HONEY BRAN MUFFIN", Category: "Cat 3 Mixes, Muffin, Cake", Price: "100"},
	{ID: 108, SKU: "9946", Pack: "BAG", Size: "30#", Brand: "WESTCO", Item: "HARVEST BRAN MUFFIN ", Category: "Cat 3 Mixes, Muffin, Cake", Price: "252"},
	{ID: 109, SKU: "31816", Pack: "BAG", Size: "30#", Brand: "WESTCO", Item: "CORN MUFFIN MIX", Category: "Cat 3 Mixes, Muffin, Cake", Price: "259"},
	{ID: 110, SKU: "9949", Pack: "BAG", Size: "30#", Brand: "WESTCO", Item: "CORN BREAD & MUFFIN MIX", Category: "Cat 3 Mixes, Muffin, Cake", Price: "11"},
	{ID: 111, SKU: "48235", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "EXTRA MOIST BROWNIE MIX", Category: "Cat 5 Mix Brownie", Price: "291"},
	{ID: 112, SKU: "48240", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "GOURMET BROWNIE MIX", Category: "Cat 5 Mix Brownie", Price: "250"},
	{ID: 113, SKU: "31584", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "ALL NATURAL BROWNIE MIX", Category: "Cat 5 Mix Brownie", Price: "106"},
	{ID: 114, SKU: "31473", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "E'ZE SPREAD BROWNIE NTF S/O", Category: "Cat 5 Mix Brownie", Price: "144"},
	{ID: 115, SKU: "30118", Pack: "BAG", Size: "50#", Brand: "WESTCO", Item: "ELITE BROWNIE MIX", Category: "Cat 5 Mix Brownie", Price: "275"},
	{ID: 116, SKU: "90134", Pack: "EA", Size: "3KG", Brand: "CACAOB", Item: "COCOA BUTTER DEODERIZED", Category: "Cat 48 Cocoa-Cocoa Butter", Price: "197"},
	{ID: 117, SKU: "10133", Pack: "CSE", Size: "4/3KG", Brand: "CACAOB", Item: "COCOA BUTTER DEODERIZED", Category: "Cat 48 Cocoa-Cocoa Butter", Price: "136"},
	{ID: 118, SKU: "74731", Pack: "CSE", Size: "30#", Brand: "CESTVI", Item: "DARK CHOCOLATE  COUVERTURE WAFER 54.5%", Category: "Cat 49 Branded Chocolate", Price: "234"},
	{ID: 119, SKU: "76253", Pack: "CSE", Size: "30#", Brand: "BARRYC", Item: "VAN LEER KENOSHA MILK CHOCOLATE WAFER 33%", Category: "Cat 50 Chocolate", Price: "28"},
	{ID: 120, SKU: "74732", Pack: "CSE", Size: "30#", Brand: "CESTVI", Item: "MILK CHOCOLATE COUVERTURE 32.6%", Category: "Cat 49 Branded Chocolate", Price: "129"},
	{ID: 121, SKU: "90286", Pack: "CSE", Size: "30#", Brand: "BARRYC", Item: "VAN LEER ULTIMATE WHITE COUVERTURE WAFER 31%", Category: "Cat 50 Chocolate", Price: "286"},
	{ID: 122, SKU: "74733", Pack: "CES", Size: "30#", Brand: "CESTVI", Item: "WHITE CHOCOLATE COUVERTURE 30.5%", Category: "Cat 49 Branded Chocolate", Price: "300"},
	{ID: 123, SKU: "7509", Pack: "CSE", Size: "5/10#", Brand: "CALBUT", Item: "VAN STEVER SEMI SWEET CHOCOLATE 52%", Category: "Cat 50 Chocolate", Price: "193"},
	{ID: 124, SKU: "74737", Pack: "CSE", Size: "5/11#", Brand: "CALBUT", Item: "811 DARK COUVERTURE BLOCK 54%", Category: "Cat 50 Chocolate", Price: "248"},
	{ID: 125, SKU: "74762", Pack: "BAG", Size: "1/11#", Brand: "CALBUT", Item: "811 DARK COUVERTURE CALLETS 54%", Category: "Cat 50 Chocolate", Price: "234"},
	{ID: 126, SKU: "74763", Pack: "BAG", Size: "1/5.5#", Brand: "CALBUT", Item: "811 DARK COUVERTURE CALLETS 54%", Category: "Cat 50 Chocolate", Price: "96"},
	{ID: 127, SKU: "74738", Pack: "CSE", Size: "8/5.5#", Brand: "CALBUT", Item: "811 DARK COUVERTURE CALLETS 54%", Category: "Cat 50 Chocolate", Price: "137"},
	{ID: 128, SKU: "74760", Pack: "BOX", Size: "2/22#", Brand: "CALBUT", Item: "811 DARK COUVERTURE CALLETS 54%", Category: "Cat 50 Chocolate", Price: "172"},
	{ID: 129, SKU: "74768", Pack: "BAG", Size: "1/22#", Brand: "CALBUT", Item: "811 DARK COUVERTURE CALLETS 54%", Category: "Cat 50 Chocolate", Price: "272"},
	{ID: 130, SKU: "74739", Pack: "CSE", Size: "5/11#", Brand: "CALBUT", Item: "823 MILK COUVERTURE BLOCK 33.6%", Category: "Cat 50 Chocolate", Price: "201"},
	{ID: 131, SKU: "74764", Pack: "BAG", Size: "1/11#", Brand: "CALBUT", Item: "823 MILK COUVERTURE BLOCK 33.6%", Category: "Cat 50 Chocolate", Price: "105"},
	{ID: 132, SKU: "74765", Pack: "BAG", Size: "1/5.5#", Brand: "CALBUT", Item: "823 MILK COUVERTURE CALLETS 33.6%", Category: "Cat 50 Chocolate", Price: "167"},
	{ID: 133, SKU: "74740", Pack: "CSE", Size: "8/5.5#", Brand: "CALBUT", Item: "823 MILK COUVERTURE CALLETS 33.6%", Category: "Cat 50 Chocolate", Price: "76"},
	{ID: 134, SKU: "74741", Pack: "CSE", Size: "8/5.5#", Brand: "CALBUT", Item: "W2 WHITE COUVERTURE CALLETS 28%", Category: "Cat 50 Chocolate", Price: "135"},
	{ID: 135, SKU: "74766", Pack: "BAG", Size: "1/5.5#", Brand: "CALBUT", Item: "W2 WHITE COUVERTURE CALLETS 28%", Category: "Cat 50 Chocolate", Price: "284"},
	{ID: 136, SKU: "74759", Pack: "BOX", Size: "5/11#", Brand: "CALBUT", Item: "W2 WHITE COUVERTURE BLOCK 28%", Category: "Cat 50 Chocolate", Price: "10"},
	{ID: 137, SKU: "74767", Pack: "BAG", Size: "1/11#", Brand: "CALBUT", Item: "W2 WHITE COUVERTURE BLOCK 28%", Category: "Cat 50 Chocolate", Price: "122"},
	{ID: 138, SKU: "15150", Pack: "CSE", Size: "30#", Brand: "BARRYC", Item: "VAN LEER MILK CHOC WAFER 31%", Category: "Cat 50 Chocolate", Price: "224"},
	{ID: 139, SKU: "26755", Pack: "CSE", Size: "30#", Brand: "BARRYC", Item: "VAN LEER CHOC SEMI SWEET WAFER 58%", Category: "Cat 50 Chocolate", Price: "73"},
	{ID: 140, SKU: "8709", Pack: "CSE", Size: "5/10#", Brand: "GUITTA", Item: "LUSTROUS CHOCOLATE COUVERTURE BLOCK ", Category: "Cat 50 Chocolate", Price: "179"},
	{ID: 141, SKU: "10742", Pack: "CSE", Size: "25#", Brand: "GUITTA", Item: "CHOCOLATE 'ETOILE DU PREMIRER 58% S/O", Category: "Cat 50 Chocolate", Price: "253"},
	{ID: 142, SKU: "10753", Pack: "CSE", Size: "25#", Brand: "GUITTA", Item: "CHOCOLATE WAFER CR√©ME FRANCAISE 31% S/O", Category: "Cat 50 Chocolate", Price: "277"},
	{ID: 143, SKU: "74744", Pack: "CSE", Size: "4/11#", Brand: "CACA0B", Item: "DARK EXTRA BITTER GUAYAQUIL PISTOLES 64%", Category: "Cat 50 Chocolate", Price: "294"},
	{ID: 144, SKU: "74774", Pack: "BAG", Size: "1/11#", Brand: "CACA0B", Item: "DARK EXTRA BITTER GUAYAQUIL PISTOLES 64%", Category: "Cat 50 Chocolate", Price: "144"},
	{ID: 145, SKU: "8673", Pack: "BAR", Size: "10#", Brand: "GUITTA", Item: "FRENCH VANILLA UPRIGHT 54%", Category: "Cat 50 Chocolate", Price: "274"},
	{ID: 146, SKU: "8730", Pack: "BAG", Size: "50#", Brand: "GUITTA", Item: "BITTERSWEET CHOCOLATE 54%", Category: "Cat 50 Chocolate", Price: "225"},
	{ID: 147, SKU: "8681", Pack: "CTN", Size: "50#", Brand: "GUITTA", Item: "DARKOTE  CHOCOLATE CHUNKS 51%", Category: "Cat 50 Chocolate", Price: "295"},
	{ID: 148, SKU: "8680", Pack: "CTN", Size: "50#", Brand: "GUITTA", Item: "WHITE SATIN RIBBON 31%", Category: "Cat 50 Chocolate", Price: "252"},
	{ID: 149, SKU: "8696", Pack: "CTN", Size: "25#", Brand: "GUITTA", Item: "CHOCOLATE LIQUOR WAFER 100%", Category: "Cat 50 Chocolate", Price: "179"},
	{ID: 150, SKU: "8661", Pack: "BAR", Size: "11#", Brand: "ASM", Item: "WHITE COATING", Category: "Cat 50 Chocolate", Price: "258"},
	{ID: 151, SKU: "8662", Pack: "CSE", Size: "6/11#", Brand: "ASM", Item: "WHITE COATING", Category: "Cat 50 Chocolate", Price: "141"},
	{ID: 152, SKU: "8663", Pack: "BAR", Size: "11#", Brand: "ASM", Item: "DARK COATING", Category: "Cat 50 Chocolate", Price: "216"},
	{ID: 153, SKU: "8666", Pack: "CSE", Size: "6/11#", Brand: "ASM", Item: "DARK COATING", Category: "Cat 50 Chocolate", Price: "207"},
	{ID: 154, SKU: "8669", Pack: "BAR", Size: "11#", Brand: "ASM", Item: "LIGHT MILK CHOC. COATING", Category: "Cat 50 Chocolate", Price: "140"},
	{ID: 155, SKU: "8672", Pack: "CSE", Size: "6/11#", Brand: "ASM", Item: "LIGHT MILK CHOC. COATING", Category: "Cat 50 Chocolate", Price: "51"},
	{ID: 156, SKU: "74720", Pack: "CSE", Size: "3/11#", Brand: "CESTVI", Item: "CHOCOLATE DARK COATING BLOCK 3/11#", Category: "Cat 50 Chocolate", Price: "99"},
	{ID: 157, SKU: "74724", Pack: "BAR", Size: "1/11#", Brand: "CESTVI", Item: "CHOCOLATE DARK COATING BLOCK 1/11#", Category: "Cat 50 Chocolate", Price: "239"},
	{ID: 158, SKU: "74723", Pack: "CSE", Size: "3/11#", Brand: "CESTVI", Item: "CHOCOLATE WHITE COATING BLOCK 3/11#", Category: "Cat 50 Chocolate", Price: "87"},
	{ID: 159, SKU: "74726", Pack: "BAR", Size: "1/11#", Brand: "CESTVI", Item: "CHOCOLATE WHITE COATING BLOCK 1/11#", Category: "Cat 50 Chocolate", Price: "66"},
	{ID: 160, SKU: "74725", Pack: "BAR", Size: "1/11#", Brand: "CALBUT", Item: "CHOCOLATE MILK COATING BLOCK 1/11#", Category: "Cat 50 Chocolate", Price: "183"},
	{ID: 161, SKU: "7506", Pack: "CSE", Size: "30#", Brand: "BARRYC", Item: "BARRY CALLEBAUT MILK CHOC SNAPS COATING", Category: "Cat 50 Chocolate", Price: "265"},
	{ID: 162, SKU: "7507", Pack: "CSE", Size: "30#", Brand: "BARRYC", Item: "BARRY CALLEBAUT DARK CHOC SNAPS COATING", Category: "Cat 50 Chocolate", Price: "133"},
	{ID: 163, SKU: "7505", Pack: "CSE", Size: "30#", Brand: "BARRYC", Item: "BARRY CALLEBAUT WHITE CHOC SNAPS COATING", Category: "Cat 50 Chocolate", Price: "15"},
	{ID: 164, SKU: "96754", Pack: "BOX", Size: "1/266 CT", Brand: "BARRYC", Item: "CHOCOLATE BAKING BATONS", Category: "Cat 50 Chocolate", Price: "33"},
	{ID: 165, SKU: "26754", Pack: "CSE", Size: "15/300 CT", Brand: "BARRYC", Item: "CHOCOLATE BAKING BATONS", Category: "Cat 50 Chocolate", Price: "184"},
	{ID: 166, SKU: "7500", Pack: "CTN", Size: "25#", Brand: "GUITTA", Item: "DARK CHOCOLATE  APEELS COATING", Category: "Cat 50 Chocolate", Price: "142"},
	{ID: 167, SKU: "8737", Pack: "CSE", Size: "25#", Brand: "GUITTA", Item: "VANILLA APEELS COATING", Category: "Cat 50 Chocolate", Price: "179"},
	{ID: 168, SKU: "8692", Pack: "BAR", Size: "10#", Brand: "GUITTA", Item: "PATISSERIE COATING UPRIGHT ", Category: "Cat 50 Chocolate", Price: "174"},
	{ID: 169, SKU: "8732", Pack: "BAR", Size: "10#", Brand: "GUITTA", Item: "WHITE UPRIGHT PASTEL COAT", Category: "Cat 50 Chocolate", Price: "24"},
	{ID: 170, SKU: "8683", Pack: "CTN", Size: "25#", Brand: "GUITTA", Item: "MILK CHOCOLATE APEELS COATING", Category: "Cat 50 Chocolate", Price: "260"},
	{ID: 171, SKU: "74704", Pack: "CSE", Size: "30#", Brand: "CESTVI", Item: "CHOC. WHITE CHUNKS 600 CT", Category: "Cat 49 Branded Chocolate", Price: "222"},
	{ID: 172, SKU: "74705", Pack: "CSE", Size: "30#", Brand: "CESTVI", Item: "CHOC CHUNKS SEMI SWEET 600CT", Category: "Cat 49 Branded Chocolate", Price: "80"},
	{ID: 173, SKU: "7544", Pack: "CSE", Size: "30#", Brand: "CESTVI", Item: "WHITE CHUNKS 300CT S/O ", Category: "Cat 49 Branded Chocolate", Price: "34"},
	{ID: 174, SKU: "74719", Pack: "CSE", Size: "30#", Brand: "CESTVI", Item: "WHITE CHOC CHIPS 1000 CT", Category: "Cat 49 Branded Chocolate", Price: "89"},
	{ID: 175, SKU: "74706", Pack: "CSE", Size: "30#", Brand: "CESTVI", Item: "CHOC CHIP SEMI SWT 1M CT", Category: "Cat 49 Branded Chocolate", Price: "119"},
	{ID: 176, SKU: "74707", Pack: "CSE", Size: "30#", Brand: "CESTVI", Item: "CHOC CHIP SEMI SWT 4M CT", Category: "Cat 49 Branded Chocolate", Price: "217"},
	{ID: 177, SKU: "7517", Pack: "CSE", Size: "30#", Brand: "BARRYC", Item: "WHITE CHOC CHIPS 4000 CT", Category: "Cat 50 Chocolate", Price: "74"},
	{ID: 178, SKU: "7530", Pack: "CSE", Size: "30#", Brand: "BARRYC", Item: "CHOC CHIPS 4000 CT S/S ", Category: "Cat 50 Chocolate", Price: "205"},
	{ID: 179, SKU: "22122", Pack: "CSE", Size: "30#", Brand: "BARRYC", Item: "CHOC CHIP S/S 10M", Category: "Cat 50 Chocolate", Price: "112"},
	{ID: 180, SKU: "7513", Pack: "CSE", Size: "30#", Brand: "BARRYC", Item: "SEMI SWEET CHOC 1000 CT", Category: "Cat 50 Chocolate", Price: "101"},
	{ID: 181, SKU: "7511", Pack: "CSE", Size: "50#", Brand: "BARRYC", Item: "SEMI SWEET CHOC CHIPS 1000 CT", Category: "Cat 50 Chocolate", Price: "151"},
	{ID: 182, SKU: "7512", Pack: "CSE", Size: "30#", Brand: "BARRYC", Item: "SEMI SWEET CHOC 2000 CT", Category: "Cat 50 Chocolate", Price: "215"},
	{ID: 183, SKU: "7576", Pack: "CTN", Size: "50#", Brand: "BARRYC", Item: "COMPOUND FLAVORED CHIP 4M", Category: "Cat 50 Chocolate", Price: "65"},
	{ID: 184, SKU: "61181", Pack: "CSE", Size: "50#", Brand: "AMBROS", Item: "CHOC LIQUOR PCS NATURAL  100% 1000CT", Category: "Cat 50 Chocolate", Price: "82"},
	{ID: 185, SKU: "8694", Pack: "CSE", Size: "25#", Brand: "GUITTA", Item: "WHITE COOKIE DROPS 900 CT", Category: "Cat 50 Chocolate", Price: "177"},
	{ID: 186, SKU: "8691", Pack: "BOX", Size: "25#", Brand: "GUITTA", Item: "WHITE COOKIE DROP 700 CT ", Category: "Cat 50 Chocolate", Price: "224"},
	{ID: 187, SKU: "8693", Pack: "BOX", Size: "25#", Brand: "GUITTA", Item: "COOKIE DROP 1000 CT ", Category: "Cat 50 Chocolate", Price: "205"},
	{ID: 188, SKU: "8676", Pack: "CSE", Size: "50#", Brand: "GUITTA", Item: "COOKIE DROPS 1000 CT  S/O ", Category: "Cat 50 Chocolate", Price: "115"},
	{ID: 189, SKU: "8690", Pack: "CTN", Size: "25#", Brand: "GUITTA", Item: "COOKIE DROP 2000 CT ", Category: "Cat 50 Chocolate", Price: "214"},
	{ID: 190, SKU: "8695", Pack: "CSE", Size: "50#", Brand: "GUITTA", Item: "COOKIE DROP 4000 CT ", Category: "Cat 50 Chocolate", Price: "157"},
	{ID: 191, SKU: "8682", Pack: "CSE", Size: "25#", Brand: "GUITTA", Item: "CHOC COOKIE DROP 4M SS ", Category: "Cat 50 Chocolate", Price: "204"},
	{ID: 192, SKU: "8679", Pack: "CTN", Size: "25#", Brand: "GUITTA", Item: "MILK CHOC CHIP 350 CT ", Category: "Cat 50 Chocolate", Price: "40"},
	{ID: 193, SKU: "8725", Pack: "CSE", Size: "25#", Brand: "NESTLE", Item: "WHITE MORSELS-900 CT", Category: "Cat 50 Chocolate", Price: "114"},
	{ID: 194, SKU: "8718", Pack: "CSE", Size: "25#", Brand: "NESTLE", Item: "SEMI-SWEET MORSELS 900CT", Category: "Cat 50 Chocolate", Price: "284"},
	{ID: 195, SKU: "7518", Pack: "CSE", Size: "50#", Brand: "BARRYC", Item: "COCOA DUTCH 22/24%", Category: "Cat 48 Cocoa-Cocoa Butter", Price: "34"},
	{ID: 196, SKU: "21109", Pack: "BAG", Size: "50#", Brand: "BARRYC", Item: "COCOA DUTCH RED/BLK 10/12", Category: "Cat 48 Cocoa-Cocoa Butter", Price: "260"},
	{ID: 197, SKU: "8613", Pack: "BAG", Size: "50#", Brand: "BARRYC", Item: "COCOA  NATURAL 10/12  S/O", Category: "Cat 48 Cocoa-Cocoa Butter", Price: "257"},
	{ID: 198, SKU: "74746", Pack: "CSE", Size: "6/2.2#", Brand: "CACAOB", Item: "COCOA EXTRA BRUTE, DUTCHED 22-24%", Category: "Cat 48 Cocoa-Cocoa Butter", Price: "22"},
}
